package game

import "testing"

func TestCelebrationActivatesOnce(t *testing.T) {
	var c Celebration
	if c.IsActive() {
		t.Fatal("celebration should start inactive")
	}
	if !c.TryActivate() {
		t.Fatal("first TryActivate should activate")
	}
	for i := 0; i < 10; i++ {
		if c.TryActivate() {
			t.Fatal("TryActivate should not re-activate")
		}
		c.Update(0.5)
	}
	if c.Elapsed() != 5 {
		t.Errorf("Elapsed() = %v, want 5", c.Elapsed())
	}

	c.Reset()
	if c.IsActive() || c.Elapsed() != 0 {
		t.Error("Reset should return to inactive")
	}
}

func TestCelebrationInactiveDoesNotAccumulate(t *testing.T) {
	var c Celebration
	c.Update(3)
	if c.Elapsed() != 0 {
		t.Errorf("inactive celebration accumulated %v", c.Elapsed())
	}
}
