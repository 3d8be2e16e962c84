package systems

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/lovepark/pkg/components"
	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/entities"
)

func TestHeartParticleReachesTarget(t *testing.T) {
	cfg := config.DefaultTuning()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(7))
	sys := NewHeartParticleSystem(em, &cfg.Particles.Heart)

	id := entities.NewHeartParticle(em, rng, &cfg.Particles.Heart, 100, 300, 200, 250, color.RGBA{A: 255})
	p, _ := ecs.GetComponent[*components.HeartParticleComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	// 飞行中点的弧线上抬
	steps := 0
	for !p.Done {
		sys.Update(0.01)
		steps++
		if p.T > 0.45 && p.T < 0.55 {
			straight := 250 + (300-250)*(1-0.5)
			if pos.Y >= straight {
				t.Errorf("heart should arc above the straight line near midpoint, y=%.2f", pos.Y)
			}
		}
		if steps > 1000 {
			t.Fatal("heart particle never finished")
		}
	}

	if pos.X != 200 || math.Abs(pos.Y-250) > 1e-9 {
		t.Errorf("heart should end at target, got (%.2f, %.2f)", pos.X, pos.Y)
	}
	if !em.IsMarkedForDestruction(id) {
		t.Error("finished heart should be destroyed in the same tick")
	}
	if elapsed := float64(steps) * 0.01; elapsed < cfg.Particles.Heart.DurationMin || elapsed > cfg.Particles.Heart.DurationMax+0.01 {
		t.Errorf("flight took %.2fs, outside configured duration range", elapsed)
	}
}

func TestConfettiFadesOut(t *testing.T) {
	cfg := config.DefaultTuning()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(3))
	sys := NewConfettiSystem(em, &cfg.Particles.Confetti, rng)

	for i := 0; i < 50; i++ {
		sys.Spawn(rng.Float64()*960, rng.Float64()*200)
	}
	if sys.Count() != 50 {
		t.Fatalf("expected 50 confetti, got %d", sys.Count())
	}

	// 极高的画面，只能靠透明度终止
	elapsed := 0.0
	for sys.Count() > 0 {
		sys.Update(0.05, 1e9)
		em.RemoveMarkedEntities()
		elapsed += 0.05
		if elapsed > cfg.Particles.Confetti.Lifetime+0.1 {
			t.Fatalf("%d confetti still alive after %.2fs", sys.Count(), elapsed)
		}
	}
}

func TestConfettiCulledBelowScreen(t *testing.T) {
	cfg := config.DefaultTuning()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(3))
	sys := NewConfettiSystem(em, &cfg.Particles.Confetti, rng)

	id := sys.Spawn(100, 623)
	c, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
	c.VY = 5

	sys.Update(0.016, 600)
	if !em.IsMarkedForDestruction(id) {
		t.Error("confetti below height+margin should be destroyed")
	}
}

func TestConfettiPhysics(t *testing.T) {
	cfg := config.DefaultTuning()
	em := ecs.NewEntityManager()
	sys := NewConfettiSystem(em, &cfg.Particles.Confetti, rand.New(rand.NewSource(1)))

	id := sys.Spawn(100, 100)
	c, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	c.VX, c.VY = 1, -2

	sys.Update(0.5, 600)

	wantVY := -2 + 0.08*0.5
	if math.Abs(c.VY-wantVY) > 1e-9 {
		t.Errorf("VY = %.4f, want %.4f", c.VY, wantVY)
	}
	if math.Abs(pos.X-130) > 1e-9 {
		t.Errorf("X = %.4f, want 130", pos.X)
	}
	if math.Abs(pos.Y-(100+wantVY*30)) > 1e-9 {
		t.Errorf("Y = %.4f, want %.4f", pos.Y, 100+wantVY*30)
	}
	if math.Abs(c.Alpha-(1-0.5/3.2)) > 1e-9 {
		t.Errorf("Alpha = %.4f, want %.4f", c.Alpha, 1-0.5/3.2)
	}
}

// TestPetalPopulationCapped 花瓣数量稳定在上限以内
func TestPetalPopulationCapped(t *testing.T) {
	cfg := config.DefaultTuning()
	cfg.Particles.Petal.SpawnChance = 1
	em := ecs.NewEntityManager()
	sys := NewPetalSystem(em, &cfg.Particles.Petal, rand.New(rand.NewSource(5)))

	for i := 0; i < 2000; i++ {
		sys.Update(0.016, 960, 1e9)
		em.RemoveMarkedEntities()
		if n := sys.Count(); n > cfg.Particles.Petal.Cap {
			t.Fatalf("tick %d: %d petals exceeds cap %d", i, n, cfg.Particles.Petal.Cap)
		}
	}
	if sys.Count() != cfg.Particles.Petal.Cap {
		t.Errorf("petals should saturate at cap, got %d", sys.Count())
	}
}

func TestPetalFallsAndIsCulled(t *testing.T) {
	cfg := config.DefaultTuning()
	cfg.Particles.Petal.SpawnChance = 0
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(5))
	sys := NewPetalSystem(em, &cfg.Particles.Petal, rng)

	palette := config.ParseColors(cfg.Particles.Petal.Colors)
	id := entities.NewPetal(em, rng, &cfg.Particles.Petal, palette, 960)

	// 最慢 18 像素/秒，从最高 -120 落到 630 以下不超过 42 秒
	for i := 0; i < 50*20; i++ {
		sys.Update(0.05, 960, 600)
		if em.IsMarkedForDestruction(id) {
			return
		}
	}
	t.Error("petal never fell past the bottom edge")
}
