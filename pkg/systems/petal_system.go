package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/entities"
)

// PetalSystem 环境花瓣
//
// 每帧在数量低于上限时按概率生成一片；花瓣匀速下落，水平速度随旋转角正弦摆动，
// 掉出画面底部 CullMargin 像素后删除。
type PetalSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.PetalConfig
	palette       []color.RGBA
	rng           *rand.Rand
}

// NewPetalSystem 创建花瓣系统
func NewPetalSystem(em *ecs.EntityManager, cfg *config.PetalConfig, rng *rand.Rand) *PetalSystem {
	return &PetalSystem{
		entityManager: em,
		cfg:           cfg,
		palette:       config.ParseColors(cfg.Colors),
		rng:           rng,
	}
}

// Update 生成、积分并剔除花瓣
func (s *PetalSystem) Update(dt, sceneWidth, sceneHeight float64) {
	if s.Count() < s.cfg.Cap && s.rng.Float64() < s.cfg.SpawnChance {
		entities.NewPetal(s.entityManager, s.rng, s.cfg, s.palette, sceneWidth)
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.PetalComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		p, _ := ecs.GetComponent[*components.PetalComponent](s.entityManager, id)

		p.Angle += p.Spin * dt
		pos.X += p.VX * dt
		pos.Y += p.VY * dt
		p.VX += math.Sin(p.Angle*1.2) * 2 * dt

		if pos.Y > sceneHeight+s.cfg.CullMargin {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Count 返回存活的花瓣数量
func (s *PetalSystem) Count() int {
	return ecs.CountWith1[*components.PetalComponent](s.entityManager)
}
