package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/lovepark/pkg/config"
	"github.com/decker502/lovepark/pkg/ecs"
	"github.com/decker502/lovepark/pkg/game"
)

func newTestCelebration() (*CelebrationSystem, *game.Celebration, *game.LoveMeter, *ConfettiSystem) {
	cfg := config.DefaultTuning()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(11))
	meter := game.NewLoveMeter(cfg.Meter.Max, cfg.Meter.SmoothingRate)
	celebration := &game.Celebration{}
	confetti := NewConfettiSystem(em, &cfg.Particles.Confetti, rng)
	return NewCelebrationSystem(celebration, meter, confetti, &cfg.Celebration, rng), celebration, meter, confetti
}

// TestCelebrationActivatesOnce 满值的第一帧激活，之后不再重复爆发
func TestCelebrationActivatesOnce(t *testing.T) {
	sys, celebration, meter, confetti := newTestCelebration()

	meter.Add(99)
	sys.Update(0.016, 960, 600)
	if celebration.IsActive() || confetti.Count() != 0 {
		t.Fatal("celebration should not start below max")
	}

	meter.Add(5)
	sys.Update(0.016, 960, 600)
	if !celebration.IsActive() {
		t.Fatal("celebration should start when value reaches max")
	}
	if got := confetti.Count(); got != 220+10 {
		t.Errorf("activation tick should spawn burst+trickle = 230, got %d", got)
	}

	for i := 0; i < 100; i++ {
		sys.Update(0.016, 960, 600)
	}
	if got := confetti.Count(); got != 230+100*10 {
		t.Errorf("later ticks should only trickle, got %d confetti", got)
	}
	if celebration.Elapsed() <= 1.6 {
		t.Errorf("elapsed should accumulate, got %.3f", celebration.Elapsed())
	}
}

// TestCelebrationIgnoresDisplayValue 判定使用真实值而非显示值
func TestCelebrationIgnoresDisplayValue(t *testing.T) {
	sys, celebration, meter, _ := newTestCelebration()

	meter.Add(100)
	if meter.DisplayValue() != 0 {
		t.Fatal("display value should lag")
	}
	sys.Update(0.016, 960, 600)
	if !celebration.IsActive() {
		t.Error("celebration should use the raw meter value")
	}
}
