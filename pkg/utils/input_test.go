package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"a", ebiten.KeyA, true},
		{"F", ebiten.KeyF, true},
		{"ArrowLeft", ebiten.KeyArrowLeft, true},
		{"arrowright", ebiten.KeyArrowRight, true},
		{"o", ebiten.KeyO, true},
		{"Escape", ebiten.KeyEscape, true},
		{"hyper", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyByName(tt.name)
			if ok != tt.ok {
				t.Fatalf("KeyByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("KeyByName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDefaultControlsAreMapped(t *testing.T) {
	for _, name := range []string{"a", "d", "f", "g", "q", "e", "ArrowLeft", "ArrowRight", "k", "l", "i", "o"} {
		if _, ok := KeyByName(name); !ok {
			t.Errorf("control key %q has no ebiten mapping", name)
		}
	}
}

func TestKeyboardInputUnknownKey(t *testing.T) {
	in := NewKeyboardInput()
	if in.IsDown("hyper") {
		t.Error("unknown key should never be down")
	}
}
