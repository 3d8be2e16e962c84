package systems

import (
	"math"
	"testing"

	"github.com/decker502/lovepark/pkg/game"
)

func TestMovementSystem(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		dt         float64
		wantDX     float64
		wantFacing float64
	}{
		{"右移并转向", []string{"d"}, 0.1, 1, 1},
		{"左移并转向", []string{"a"}, 0.1, -1, -1},
		{"左右同时按下抵消，保持朝向", []string{"a", "d"}, 0.1, 0, 1},
		{"不按键不动", nil, 0.1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 300)
			sys := NewMovementSystem(w.em, w.pairing)
			a := w.actor(t, w.p1)
			startX := a.pos.X

			input := game.SetInput{}
			for _, k := range tt.keys {
				input.Press(k)
			}
			sys.Update(tt.dt, input, 0, 2000)

			want := startX + tt.wantDX*a.actor.Speed*tt.dt
			if math.Abs(a.pos.X-want) > 1e-9 {
				t.Errorf("X = %.3f, want %.3f", a.pos.X, want)
			}
			if a.actor.Facing != tt.wantFacing {
				t.Errorf("Facing = %.0f, want %.0f", a.actor.Facing, tt.wantFacing)
			}
		})
	}
}

func TestMovementSystemClampsToBounds(t *testing.T) {
	w := newTestWorld(t, 300)
	sys := NewMovementSystem(w.em, w.pairing)
	input := game.SetInput{"a": true, "ArrowRight": true}

	for i := 0; i < 200; i++ {
		sys.Update(0.05, input, 40, 920)
	}

	p1 := w.actor(t, w.p1)
	if p1.pos.X != 40 {
		t.Errorf("player 1 should stop at left bound 40, got %.2f", p1.pos.X)
	}
	p2 := w.actor(t, w.p2)
	if want := 920 - p2.actor.Width; p2.pos.X != want {
		t.Errorf("player 2 should stop at %.2f, got %.2f", want, p2.pos.X)
	}
}
