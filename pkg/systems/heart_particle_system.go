package systems

import (
	"math"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/utils"
)

// HeartParticleSystem 推进爱心粒子的飞行
//
// 位置 = lerp(起点, 终点, ease(T))，Y 方向再减去 sin(ease(T)·π)·Lift 形成上抬弧线。
// T 到达 1 时粒子停在终点并在同一帧被标记删除。
type HeartParticleSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.HeartParticleConfig
}

// NewHeartParticleSystem 创建爱心粒子系统
func NewHeartParticleSystem(em *ecs.EntityManager, cfg *config.HeartParticleConfig) *HeartParticleSystem {
	return &HeartParticleSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Update 积分并剔除到达终点的粒子
func (s *HeartParticleSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.HeartParticleComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		p, _ := ecs.GetComponent[*components.HeartParticleComponent](s.entityManager, id)

		if !p.Done {
			p.T += dt / p.Duration
			if p.T >= 1 {
				p.T = 1
				p.Done = true
			}
			e := utils.Smoothstep(p.T)
			pos.X = utils.Lerp(p.StartX, p.TargetX, e)
			pos.Y = utils.Lerp(p.StartY, p.TargetY, e) - math.Sin(e*math.Pi)*s.cfg.Lift
			p.Wobble += dt * 7
		}

		if p.Done {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Count 返回存活的爱心粒子数量
func (s *HeartParticleSystem) Count() int {
	return ecs.CountWith1[*components.HeartParticleComponent](s.entityManager)
}
