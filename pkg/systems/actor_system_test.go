package systems

import (
	"math"
	"testing"

	"github.com/decker502/lovepark/pkg/types"
)

// TestActionProgressesOverDuration 动作进度在恰好一个时长内从 0 增长到 1，然后回到 idle
func TestActionProgressesOverDuration(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	a := w.actor(t, w.p1)

	// 比心时长 1.0 秒，0.125 的步长可以精确累加
	perform(a, &w.cfg.Gestures.Heart, types.GestureHeart, 0)
	const dt = 0.125

	prev := a.action.T
	for step := 1; step < 8; step++ {
		sys.Update(dt)
		if a.action.Current != types.ActionHeart {
			t.Fatalf("step %d: action ended early", step)
		}
		if a.action.T <= prev {
			t.Fatalf("step %d: T did not increase (%.3f -> %.3f)", step, prev, a.action.T)
		}
		prev = a.action.T
	}

	sys.Update(dt)
	if a.action.Current != types.ActionIdle {
		t.Errorf("action should return to idle after exactly 1.0s, got %s", a.action.Current)
	}
	if a.action.T != 0 || a.action.Reach != 0 {
		t.Errorf("idle should reset T and Reach, got T=%.3f Reach=%.3f", a.action.T, a.action.Reach)
	}
}

// TestActionFrameCountAt60FPS 以 1/60 步长推进时，每种动作恰好持续 时长×60 帧
func TestActionFrameCountAt60FPS(t *testing.T) {
	tests := []struct {
		kind   types.GestureKind
		frames int
	}{
		{types.GestureKiss, 54},
		{types.GestureHug, 78},
		{types.GestureBlow, 48},
		{types.GestureHeart, 60},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := newTestWorld(t, 300)
			sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
			a := w.actor(t, w.p1)

			perform(a, w.cfg.Gestures.Get(tt.kind), tt.kind, 0)
			frames := 0
			for a.action.Current != types.ActionIdle && frames < 200 {
				sys.Update(1.0 / 60)
				frames++
			}
			if frames != tt.frames {
				t.Errorf("%s lasted %d frames, want %d", tt.kind, frames, tt.frames)
			}
		})
	}
}

func TestReachPeaksAtReachFraction(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	a := w.actor(t, w.p1)

	// 亲亲时长 0.9，伸展占前 0.5
	perform(a, &w.cfg.Gestures.Kiss, types.GestureKiss, 0)
	sys.Update(0.45)
	if math.Abs(a.action.Reach-1) > 1e-9 {
		t.Errorf("reach at T=0.5 should be 1, got %.4f", a.action.Reach)
	}
	sys.Update(0.225)
	if a.action.Reach <= 0 || a.action.Reach >= 1 {
		t.Errorf("reach should be retracting, got %.4f", a.action.Reach)
	}
}

func TestPerformBoostsJoyAndExpression(t *testing.T) {
	w := newTestWorld(t, 300)
	a := w.actor(t, w.p1)

	perform(a, &w.cfg.Gestures.Hug, types.GestureHug, 2.5)
	perform(a, &w.cfg.Gestures.Hug, types.GestureHug, 2.5)

	if a.expr.Joy != 1 {
		t.Errorf("joy should be capped at 1, got %.2f", a.expr.Joy)
	}
	if a.expr.ExpressionTime != 0.7 {
		t.Errorf("expression time = %.2f, want 0.7", a.expr.ExpressionTime)
	}
	if a.action.LastPerformedAt[types.GestureHug] != 2.5 {
		t.Errorf("LastPerformedAt not recorded")
	}
}

func TestJoyDecay(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	a := w.actor(t, w.p1)
	a.expr.Joy = 0.5

	sys.Update(1)
	if math.Abs(a.expr.Joy-0.25) > 1e-9 {
		t.Errorf("joy after 1s = %.3f, want 0.25", a.expr.Joy)
	}
	sys.Update(2)
	if a.expr.Joy != 0 {
		t.Errorf("joy should not go below 0, got %.3f", a.expr.Joy)
	}
}

func TestReactionExpires(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	a := w.actor(t, w.p2)

	a.react.Receive(types.GestureHug, 0.5)
	sys.Update(0.25)
	if !a.react.Active {
		t.Fatal("reaction should still be active")
	}
	sys.Update(0.25)
	if a.react.Active {
		t.Error("reaction should expire after its duration")
	}
}

// TestReactionIndependentOfAction 反应与自身动作互不影响
func TestReactionIndependentOfAction(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	a := w.actor(t, w.p1)

	perform(a, &w.cfg.Gestures.Hug, types.GestureHug, 0)
	a.react.Receive(types.GestureKiss, 0.35)
	sys.Update(0.1)

	if a.action.Current != types.ActionHug || !a.react.Active {
		t.Errorf("action and reaction should both be active, got action=%s react=%v",
			a.action.Current, a.react.Active)
	}
}

func TestEyeLookFollowsPartner(t *testing.T) {
	w := newTestWorld(t, 150)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	sys.Update(0.01)

	if got := w.actor(t, w.p1).expr.EyeLook; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("player 1 eye look = %.3f, want 0.5", got)
	}
	if got := w.actor(t, w.p2).expr.EyeLook; math.Abs(got+0.5) > 1e-9 {
		t.Errorf("player 2 eye look = %.3f, want -0.5", got)
	}
}

func TestBlinkCycle(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewActorSystem(w.em, w.pairing, w.cfg, w.rng)
	a := w.actor(t, w.p1)
	a.expr.BlinkT = 0.05

	sys.Update(0.1)
	if !a.expr.IsBlinking() {
		t.Fatal("countdown elapsed, actor should blink")
	}
	if a.expr.BlinkT < 1.6 || a.expr.BlinkT >= 4.2 {
		t.Errorf("next blink interval %.2f out of [1.6, 4.2)", a.expr.BlinkT)
	}

	sys.Update(0.1)
	if a.expr.IsBlinking() {
		t.Error("blink should last about 0.1s")
	}
}
