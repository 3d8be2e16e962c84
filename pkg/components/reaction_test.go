package components

import (
	"testing"

	"github.com/decker502/lovepark/pkg/types"
)

func TestReactionReceiveAndRemaining(t *testing.T) {
	var r ReactionComponent
	if r.Remaining() != 0 {
		t.Error("inactive reaction should have no strength")
	}

	r.Receive(types.GestureHug, 0.5)
	if !r.Active || r.Type != types.GestureHug || r.T != 0 {
		t.Fatalf("unexpected reaction state: %+v", r)
	}
	if r.Remaining() != 1 {
		t.Errorf("Remaining() = %v, want 1 at start", r.Remaining())
	}

	r.T = 0.25
	if got := r.Remaining(); got != 0.5 {
		t.Errorf("Remaining() = %v, want 0.5 halfway", got)
	}

	r.T = 0.75
	if got := r.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0 past the end", got)
	}

	// 新反应覆盖旧反应
	r.Receive(types.GestureKiss, 0.35)
	if r.Type != types.GestureKiss || r.T != 0 || r.Duration != 0.35 {
		t.Errorf("Receive should overwrite the running reaction: %+v", r)
	}
}
