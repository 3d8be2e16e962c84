// Package session 组装一局游戏：两个角色、三类粒子、进度条和庆祝状态，
// 并按固定顺序驱动每一帧的模拟。
package session

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/entities"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/systems"
	"github.com/decker502/lovepark/pkg/types"
	"github.com/decker502/lovepark/pkg/utils"
	"github.com/google/uuid"
)

// Session 一局游戏的全部状态
//
// 会话拥有实体管理器和配对表，角色之间不互相引用。
// 不是并发安全的：所有方法都必须在帧循环所在的 goroutine 上调用。
type Session struct {
	id  string
	cfg *config.TuningConfig
	rng *rand.Rand

	entityManager *ecs.EntityManager
	actors        map[types.Role]ecs.EntityID
	order         []ecs.EntityID
	partners      map[types.Role]types.Role

	meter       *game.LoveMeter
	celebration *game.Celebration
	pulse       *game.ScreenPulse

	width, height float64
	left, right   float64
	now           float64

	movementSystem    *systems.MovementSystem
	actorSystem       *systems.ActorSystem
	interactionSystem *systems.InteractionSystem
	heartSystem       *systems.HeartParticleSystem
	confettiSystem    *systems.ConfettiSystem
	petalSystem       *systems.PetalSystem
	celebrationSystem *systems.CelebrationSystem
}

// New 创建会话并开始第一局
//
// 参数:
//   - cfg: 已校验的数值配置
//   - rng: 随机数源（粒子、眨眼），测试时传入固定种子
//   - width, height: 场景尺寸（逻辑像素）
func New(cfg *config.TuningConfig, rng *rand.Rand, width, height float64) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tuning config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	s := &Session{
		cfg:           cfg,
		rng:           rng,
		entityManager: ecs.NewEntityManager(),
		actors:        make(map[types.Role]ecs.EntityID, len(types.AllRoles)),
		partners: map[types.Role]types.Role{
			types.RoleBubu: types.RoleDudu,
			types.RoleDudu: types.RoleBubu,
		},
		meter:       game.NewLoveMeter(cfg.Meter.Max, cfg.Meter.SmoothingRate),
		celebration: &game.Celebration{},
		pulse:       game.NewScreenPulse(cfg.Actions.ScreenPulseDecay),
		width:       width,
		height:      height,
	}

	em := s.entityManager
	s.movementSystem = systems.NewMovementSystem(em, s)
	s.actorSystem = systems.NewActorSystem(em, s, cfg, rng)
	s.interactionSystem = systems.NewInteractionSystem(em, s, cfg, s.meter, s.pulse, rng)
	s.heartSystem = systems.NewHeartParticleSystem(em, &cfg.Particles.Heart)
	s.confettiSystem = systems.NewConfettiSystem(em, &cfg.Particles.Confetti, rng)
	s.petalSystem = systems.NewPetalSystem(em, &cfg.Particles.Petal, rng)
	s.celebrationSystem = systems.NewCelebrationSystem(s.celebration, s.meter, s.confettiSystem, &cfg.Celebration, rng)

	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start 把会话重置到初始状态
//
// 进度条归零，庆祝结束，所有粒子清空，两个角色回到出生位置并处于空闲、冷却就绪状态。
// 动作事件监听器保留。
func (s *Session) Start() error {
	s.entityManager.Reset()
	s.meter.Reset()
	s.celebration.Reset()
	s.pulse.Reset()
	s.now = 0
	s.order = s.order[:0]
	clear(s.actors)

	s.left, s.right = s.cfg.Layout.Bounds(s.width)
	height := s.cfg.Layout.ActorHeightFor(s.height)
	groundY := s.cfg.Layout.GroundY(s.height)

	for _, role := range types.AllRoles {
		actorCfg, ok := s.cfg.ActorFor(role)
		if !ok {
			return fmt.Errorf("no actor configured for role %s", role)
		}
		x := actorCfg.StartX
		if x < 0 {
			x = s.width + x
		}
		id, err := entities.NewActorEntity(s.entityManager, actorCfg, x, groundY-height, height, s.rng)
		if err != nil {
			return fmt.Errorf("failed to create actor %s: %w", role, err)
		}
		s.actors[role] = id
		s.order = append(s.order, id)
	}
	s.layout()

	s.id = uuid.NewString()
	log.Printf("[Session] started %s (%.0fx%.0f)", s.id, s.width, s.height)
	return nil
}

// Resize 改变场景尺寸并重新布局角色
func (s *Session) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.left, s.right = s.cfg.Layout.Bounds(width)
	s.layout()
	log.Printf("[Session] resized to %.0fx%.0f", width, height)
}

// layout 按场景尺寸设置角色大小、站位和活动范围
//
// 右侧角色至少在左侧角色右方 MinSeparation 像素。推开后越过右边界时，
// 从右往左依次收回；场景窄到放不下时以不出界为准。
func (s *Session) layout() {
	height := s.cfg.Layout.ActorHeightFor(s.height)
	groundY := s.cfg.Layout.GroundY(s.height)
	sep := s.cfg.Layout.MinSeparation

	positions := make([]*components.PositionComponent, 0, len(s.order))
	maxX := s.right
	for _, id := range s.order {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		actor.SetSize(height)
		pos.Y = groundY - actor.Height
		maxX = s.right - actor.Width
		pos.X = utils.Clamp(pos.X, s.left, maxX)
		if n := len(positions); n > 0 && pos.X < positions[n-1].X+sep {
			pos.X = positions[n-1].X + sep
		}
		positions = append(positions, pos)
	}

	limit := maxX
	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		if pos.X > limit {
			pos.X = limit
		}
		if pos.X < s.left {
			pos.X = s.left
		}
		limit = pos.X - sep
	}
}

// Update 推进一帧
//
// 顺序固定：进度条显示值 → 移动 → 角色状态 → 动作判定（玩家1、玩家2）
// → 爱心粒子 → 彩纸 → 花瓣 → 庆祝 → 屏幕脉冲 → 删除本帧终止的实体。
func (s *Session) Update(dt float64, input game.Input) {
	dt = game.ClampDeltaTime(dt, s.cfg.MaxDeltaTime)
	if input == nil {
		input = game.NoInput{}
	}
	s.now += dt

	s.meter.Update(dt)
	s.movementSystem.Update(dt, input, s.left, s.right)
	s.actorSystem.Update(dt)
	s.interactionSystem.Update(s.now, input)

	s.heartSystem.Update(dt)
	s.confettiSystem.Update(dt, s.height)
	s.petalSystem.Update(dt, s.width, s.height)
	s.celebrationSystem.Update(dt, s.width, s.height)
	s.pulse.Update(dt)

	s.entityManager.RemoveMarkedEntities()
}

// AddGestureListener 注册动作事件监听器，跨局保留
func (s *Session) AddGestureListener(l game.GestureListener) {
	s.interactionSystem.AddListener(l)
}

// Actors 按固定顺序（玩家1、玩家2）返回角色实体
func (s *Session) Actors() []ecs.EntityID {
	return s.order
}

// Partner 返回某个角色实体的对方
func (s *Session) Partner(id ecs.EntityID) (ecs.EntityID, bool) {
	actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}
	other, ok := s.actors[s.partners[actor.Role]]
	return other, ok
}

// Actor 返回某个角色的实体
func (s *Session) Actor(role types.Role) (ecs.EntityID, bool) {
	id, ok := s.actors[role]
	return id, ok
}

// ID 返回本局的唯一标识（每次 Start 重新生成）
func (s *Session) ID() string { return s.id }

// EntityManager 返回实体管理器，供渲染只读访问
func (s *Session) EntityManager() *ecs.EntityManager { return s.entityManager }

// Config 返回数值配置
func (s *Session) Config() *config.TuningConfig { return s.cfg }

// Meter 返回进度条
func (s *Session) Meter() *game.LoveMeter { return s.meter }

// Celebration 返回庆祝状态
func (s *Session) Celebration() *game.Celebration { return s.celebration }

// ScreenPulse 返回屏幕脉冲强度
func (s *Session) ScreenPulse() float64 { return s.pulse.Value() }

// Bounds 返回角色活动范围
func (s *Session) Bounds() (left, right float64) { return s.left, s.right }

// Size 返回场景尺寸
func (s *Session) Size() (width, height float64) { return s.width, s.height }

// Now 返回本局已模拟的时间（秒）
func (s *Session) Now() float64 { return s.now }

// HeartCount 返回存活的爱心粒子数量
func (s *Session) HeartCount() int { return s.heartSystem.Count() }

// ConfettiCount 返回存活的彩纸数量
func (s *Session) ConfettiCount() int { return s.confettiSystem.Count() }

// PetalCount 返回存活的花瓣数量
func (s *Session) PetalCount() int { return s.petalSystem.Count() }
