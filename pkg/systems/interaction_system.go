package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/entities"
	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/types"
	"github.com/decker502/lovepark/pkg/utils"
)

// InteractionSystem 动作判定与计分
//
// 每帧按固定顺序（玩家1、玩家2）检查每个角色的四个动作键：
// 按键按住且冷却结束（且角色空闲）即视为一次"尝试"，尝试总会消耗冷却并播放动画；
// 只有两人中心距离小于该动作的判定距离时才算"成功"：生成爱心粒子、给进度条加分、
// 并让对方进入反应状态。
type InteractionSystem struct {
	entityManager *ecs.EntityManager
	pairing       Pairing
	cfg           *config.TuningConfig
	meter         *game.LoveMeter
	pulse         *game.ScreenPulse
	rng           *rand.Rand

	burstColors     [types.GestureCount][]color.RGBA
	missBurstColors [types.GestureCount][]color.RGBA

	listeners []game.GestureListener
}

// NewInteractionSystem 创建交互判定系统
func NewInteractionSystem(em *ecs.EntityManager, pairing Pairing, cfg *config.TuningConfig,
	meter *game.LoveMeter, pulse *game.ScreenPulse, rng *rand.Rand) *InteractionSystem {
	s := &InteractionSystem{
		entityManager: em,
		pairing:       pairing,
		cfg:           cfg,
		meter:         meter,
		pulse:         pulse,
		rng:           rng,
	}
	for _, kind := range types.AllGestures {
		g := cfg.Gestures.Get(kind)
		s.burstColors[kind] = config.ParseColors(g.Burst.Colors)
		if g.MissBurst != nil {
			s.missBurstColors[kind] = config.ParseColors(g.MissBurst.Colors)
		}
	}
	return s
}

// AddListener 注册动作事件监听器
func (s *InteractionSystem) AddListener(l game.GestureListener) {
	s.listeners = append(s.listeners, l)
}

// Update 读取按键并处理所有角色的动作尝试
func (s *InteractionSystem) Update(now float64, input game.Input) {
	for _, id := range s.pairing.Actors() {
		actor, ok := getActor(s.entityManager, id)
		if !ok {
			continue
		}
		for _, kind := range types.AllGestures {
			if input.IsDown(actor.actor.ControlKey(types.GestureControl(kind))) {
				s.TryGesture(id, kind, now)
			}
		}
	}
}

// CanPerform 某个角色此刻能否开始某个动作
//
// 冷却必须结束。默认新动作直接打断进行中的动作，
// 配置 actions.allowPreempt 为 false 时还要求角色处于空闲状态。
func (s *InteractionSystem) CanPerform(id ecs.EntityID, kind types.GestureKind, now float64) bool {
	a, ok := getActor(s.entityManager, id)
	if !ok {
		return false
	}
	return s.canPerform(a, kind, now)
}

func (s *InteractionSystem) canPerform(a *actorParts, kind types.GestureKind, now float64) bool {
	if !a.action.CooldownReady(kind, now, s.cfg.Gestures.Get(kind).Cooldown) {
		return false
	}
	return s.cfg.Actions.AllowPreempt || a.action.IsIdle()
}

// TryGesture 尝试执行一次动作
//
// 返回:
//   - game.GestureEvent: 本次尝试的结果
//   - bool: 是否真正发生了尝试（冷却未结束或角色忙碌时为 false，不产生任何效果）
func (s *InteractionSystem) TryGesture(id ecs.EntityID, kind types.GestureKind, now float64) (game.GestureEvent, bool) {
	self, other, ok := getPair(s.entityManager, s.pairing, id)
	if !ok {
		return game.GestureEvent{}, false
	}
	if !s.canPerform(self, kind, now) {
		return game.GestureEvent{}, false
	}

	g := s.cfg.Gestures.Get(kind)
	sx, sy := self.center()
	tx, ty := other.center()
	d := utils.Distance(sx, sy, tx, ty)
	facingTarget := self.actor.Facing == utils.Sign(tx-sx)

	perform(self, g, kind, now)

	points, success := ScoreGesture(g, d, facingTarget)
	if success {
		s.spawnBurst(&g.Burst, s.burstColors[kind], self, other)
		other.react.Receive(g.ReactionKind(), g.ReactionDuration)
		if g.ScreenPulse > 0 {
			s.pulse.Trigger(g.ScreenPulse)
		}
	} else if g.MissBurst != nil {
		s.spawnBurst(g.MissBurst, s.missBurstColors[kind], self, other)
	}
	if points > 0 {
		s.meter.Add(points)
	}

	ev := game.GestureEvent{
		Role:     self.actor.Role,
		Kind:     kind,
		Success:  success,
		Points:   points,
		Distance: d,
	}
	log.Printf("[Interaction] %s %s: distance=%.1f success=%v points=%.0f meter=%.0f",
		ev.Role, ev.Kind, ev.Distance, ev.Success, ev.Points, s.meter.Value())
	for _, l := range s.listeners {
		l(ev)
	}
	return ev, true
}

// ScoreGesture 计算一次尝试的得分
//
// 距离严格小于 Range 判定成功：距离严格小于 CloseRange（若配置）得 ClosePoints，否则得 Points，
// 成功且面朝对方时再加 FacingBonus。失败时得 MissPoints。
func ScoreGesture(g *config.GestureConfig, distance float64, facingTarget bool) (points float64, success bool) {
	if distance >= g.Range {
		return g.MissPoints, false
	}
	points = g.Points
	if g.CloseRange > 0 && distance < g.CloseRange {
		points = g.ClosePoints
	}
	if facingTarget {
		points += g.FacingBonus
	}
	return points, true
}

// spawnBurst 按样式生成一组爱心粒子
func (s *InteractionSystem) spawnBurst(b *config.BurstConfig, colors []color.RGBA, self, other *actorParts) {
	n := b.Count
	if b.ExtraCount > 0 {
		n += s.rng.Intn(b.ExtraCount)
	}

	sx, sy := self.center()
	tx, ty := other.center()
	w, h := self.actor.Width, self.actor.Height
	heartCfg := &s.cfg.Particles.Heart

	for i := 0; i < n; i++ {
		clr := colors[i%len(colors)]
		switch b.Pattern {
		case config.BurstStream:
			fromX := sx + self.actor.Facing*b.MouthX*w + s.jitter(b.SourceJitter.X)
			fromY := sy - b.MouthY*h + s.jitter(b.SourceJitter.Y)
			toX := tx + s.jitter(b.TargetJitter.X)
			toY := ty - b.TargetLift*h + s.jitter(b.TargetJitter.Y)
			entities.NewHeartParticle(s.entityManager, s.rng, heartCfg, fromX, fromY, toX, toY, clr)

		case config.BurstRing:
			cx := (sx + tx) / 2
			cy := (sy+ty)/2 - b.CenterLift
			ang := float64(i) / float64(n) * 2 * math.Pi
			r := b.RadiusMin + s.rng.Float64()*(b.RadiusMax-b.RadiusMin)
			entities.NewHeartParticle(s.entityManager, s.rng, heartCfg,
				cx, cy, cx+math.Cos(ang)*r, cy+math.Sin(ang)*r, clr)

		case config.BurstRise:
			entities.NewHeartParticle(s.entityManager, s.rng, heartCfg,
				sx, sy-b.RiseFrom, sx, sy-b.RiseTo, clr)
		}
	}
}

// jitter 返回 [-span/2, span/2) 内的随机偏移
func (s *InteractionSystem) jitter(span float64) float64 {
	if span == 0 {
		return 0
	}
	return (s.rng.Float64() - 0.5) * span
}
