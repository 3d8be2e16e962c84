package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
)

// NewHeartParticle 创建一个从 (sx, sy) 飞向 (tx, ty) 的爱心粒子
// 飞行时长和尺寸在配置范围内随机
func NewHeartParticle(em *ecs.EntityManager, rng *rand.Rand, cfg *config.HeartParticleConfig,
	sx, sy, tx, ty float64, clr color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: sx, Y: sy})
	em.AddComponent(id, &components.HeartParticleComponent{
		StartX:   sx,
		StartY:   sy,
		TargetX:  tx,
		TargetY:  ty,
		Duration: cfg.DurationMin + rng.Float64()*(cfg.DurationMax-cfg.DurationMin),
		Color:    clr,
		Size:     cfg.SizeMin + rng.Float64()*(cfg.SizeMax-cfg.SizeMin),
		Wobble:   rng.Float64() * 2 * math.Pi,
	})
	return id
}

// NewConfetti 在 (x, y) 创建一片向上抛出的彩纸
func NewConfetti(em *ecs.EntityManager, rng *rand.Rand, palette []color.RGBA, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ConfettiComponent{
		VX:            (rng.Float64() - 0.5) * 4,
		VY:            -rng.Float64()*5 - 2,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 0.25,
		Color:         pick(rng, palette),
		Size:          3 + rng.Float64()*4,
		Alpha:         1,
	})
	return id
}

// NewPetal 在画面上方随机位置创建一片花瓣
func NewPetal(em *ecs.EntityManager, rng *rand.Rand, cfg *config.PetalConfig, palette []color.RGBA, sceneWidth float64) ecs.EntityID {
	clr := palette[0]
	if len(palette) > 1 && rng.Float64() >= cfg.PrimaryBias {
		clr = palette[1+rng.Intn(len(palette)-1)]
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: rng.Float64() * sceneWidth,
		Y: -20 - rng.Float64()*100,
	})
	em.AddComponent(id, &components.PetalComponent{
		VX:    -12 + rng.Float64()*24,
		VY:    18 + rng.Float64()*26,
		Angle: rng.Float64() * 2 * math.Pi,
		Spin:  (rng.Float64() - 0.5) * 1.2,
		Color: clr,
		Size:  4 + rng.Float64()*4,
	})
	return id
}

func pick(rng *rand.Rand, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return palette[rng.Intn(len(palette))]
}
