package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestHoldInput(timeout time.Duration) (*HoldInput, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	h := NewHoldInput(timeout)
	h.now = clk.now
	return h, clk
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want string
		ok   bool
	}{
		{"arrow left", tcell.KeyLeft, 0, "ArrowLeft", true},
		{"arrow right", tcell.KeyRight, 0, "ArrowRight", true},
		{"lower rune", tcell.KeyRune, 'k', "k", true},
		{"upper rune", tcell.KeyRune, 'F', "f", true},
		{"space", tcell.KeyRune, ' ', "space", true},
		{"enter", tcell.KeyEnter, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyName(tt.key, tt.ch)
			if ok != tt.ok || got != tt.want {
				t.Errorf("KeyName() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHoldInputTimeout(t *testing.T) {
	h, clk := newTestHoldInput(200 * time.Millisecond)

	if h.IsDown("a") {
		t.Fatal("nothing pressed yet")
	}

	h.HandleKey(tcell.KeyRune, 'a')
	if !h.IsDown("a") {
		t.Error("key should be down right after the event")
	}

	clk.advance(150 * time.Millisecond)
	if !h.IsDown("a") {
		t.Error("key should still be down inside the timeout")
	}

	// 自动重复刷新时间戳
	h.HandleKey(tcell.KeyRune, 'a')
	clk.advance(150 * time.Millisecond)
	if !h.IsDown("a") {
		t.Error("repeat event should extend the hold")
	}

	clk.advance(100 * time.Millisecond)
	if h.IsDown("a") {
		t.Error("key should be released after the timeout")
	}
}

func TestHoldInputCaseInsensitive(t *testing.T) {
	h, _ := newTestHoldInput(0)

	h.HandleKey(tcell.KeyLeft, 0)
	if !h.IsDown("ArrowLeft") || !h.IsDown("arrowleft") {
		t.Error("arrow key lookup should ignore case")
	}
	if h.IsDown("ArrowRight") {
		t.Error("other keys should stay up")
	}

	h.Reset()
	if h.IsDown("ArrowLeft") {
		t.Error("Reset should release every key")
	}
}

func TestHoldInputIgnoresUnknownKeys(t *testing.T) {
	h, _ := newTestHoldInput(0)
	if h.HandleKey(tcell.KeyEnter, 0) {
		t.Error("enter is not a control key")
	}
	if h.timeout != DefaultHoldTimeout {
		t.Errorf("timeout = %v, want default %v", h.timeout, DefaultHoldTimeout)
	}
}
