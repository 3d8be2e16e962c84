package systems

import (
	"image/color"
	"math/rand"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/entities"
	"github.com/decker502/lovepark/pkg/utils"
)

// framesPerSecond 彩纸速度以"每 1/60 秒像素"为单位
const framesPerSecond = 60.0

// ConfettiSystem 彩纸的生成、积分和剔除
//
// 彩纸受恒定重力下落，不透明度随年龄线性下降；
// 不透明度降到 0 或掉出画面底部 CullMargin 像素后删除。
type ConfettiSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.ConfettiConfig
	palette       []color.RGBA
	rng           *rand.Rand
}

// NewConfettiSystem 创建彩纸系统
func NewConfettiSystem(em *ecs.EntityManager, cfg *config.ConfettiConfig, rng *rand.Rand) *ConfettiSystem {
	return &ConfettiSystem{
		entityManager: em,
		cfg:           cfg,
		palette:       config.ParseColors(cfg.Colors),
		rng:           rng,
	}
}

// Spawn 在 (x, y) 生成一片彩纸
func (s *ConfettiSystem) Spawn(x, y float64) ecs.EntityID {
	return entities.NewConfetti(s.entityManager, s.rng, s.palette, x, y)
}

// Update 积分并剔除彩纸
func (s *ConfettiSystem) Update(dt, sceneHeight float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ConfettiComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)

		c.VY += s.cfg.Gravity * dt
		pos.X += c.VX * dt * framesPerSecond
		pos.Y += c.VY * dt * framesPerSecond
		c.Rotation += c.RotationSpeed * dt * framesPerSecond
		c.Life += dt
		c.Alpha = utils.Clamp01(1 - c.Life/s.cfg.Lifetime)

		if pos.Y > sceneHeight+s.cfg.CullMargin || c.Alpha <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Count 返回存活的彩纸数量
func (s *ConfettiSystem) Count() int {
	return ecs.CountWith1[*components.ConfettiComponent](s.entityManager)
}
