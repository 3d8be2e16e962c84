package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/decker502/lovepark/pkg/types"
)

func TestArmTargets(t *testing.T) {
	const w, h = 160.0, 200.0

	idle := ArmTargets(w, h, types.ActionIdle, 0, 1)
	if idle.LeftY != idle.ShoulderY+14 || idle.RightY != idle.ShoulderY+14 {
		t.Errorf("idle arms should hang below the shoulders, got %+v", idle)
	}

	tests := []struct {
		name   string
		action types.Action
		toward float64
		check  func(p ArmPose) bool
	}{
		{"亲亲向右伸右手", types.ActionKiss, 1, func(p ArmPose) bool { return near(p.RightX, w+30) && p.LeftX == p.LeftShoulderX }},
		{"亲亲向左伸左手", types.ActionKiss, -1, func(p ArmPose) bool { return near(p.LeftX, -30) && p.RightX == p.RightShoulderX }},
		{"抱抱张开双臂", types.ActionHug, 1, func(p ArmPose) bool { return p.LeftX < p.LeftShoulderX && p.RightX > p.RightShoulderX }},
		{"飞吻手放嘴边", types.ActionBlow, 1, func(p ArmPose) bool { return p.RightY == p.ShoulderY-12 }},
		{"比心双手合拢", types.ActionHeart, 1, func(p ArmPose) bool { return near(p.RightX-p.LeftX, 16) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ArmTargets(w, h, tt.action, 1, tt.toward)
			if !tt.check(p) {
				t.Errorf("unexpected arm pose %+v", p)
			}
		})
	}
}

func TestControlsHelp(t *testing.T) {
	w := newTestWorld(t, 300)
	help := ControlsHelp(w.actor(t, w.p1).actor)

	for _, want := range []string{"Prateek", "a/d move", "f kiss", "g hug", "q blow", "e heart"} {
		if !strings.Contains(help, want) {
			t.Errorf("help %q missing %q", help, want)
		}
	}
}

func TestTransformApply(t *testing.T) {
	tr := newTransform(10, 20, 2, 1, math.Pi/2)
	x, y := tr.apply(1, 0)
	if math.Abs(float64(x)-10) > 1e-5 || math.Abs(float64(y)-22) > 1e-5 {
		t.Errorf("apply(1,0) = (%.3f, %.3f), want (10, 22)", x, y)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMeterLabel(t *testing.T) {
	tests := []struct {
		value, max float64
		want       string
	}{
		{0, 100, "LOVE METER 0%"},
		{44.6, 100, "LOVE METER 45%"},
		{100, 100, "LOVE METER 100%"},
		{25, 50, "LOVE METER 50%"},
		{10, 0, "LOVE METER 0%"},
	}
	for _, tt := range tests {
		if got := MeterLabel(tt.value, tt.max); got != tt.want {
			t.Errorf("MeterLabel(%v, %v) = %q, want %q", tt.value, tt.max, got, tt.want)
		}
	}
}
