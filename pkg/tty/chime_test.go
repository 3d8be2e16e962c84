package tty

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/types"
)

// drain 读完整个 streamer，返回样本总数和最大振幅
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestToneLengthAndAmplitude(t *testing.T) {
	tn := newTone(440, 100*time.Millisecond, 0.5)

	n, peak := drain(t, tn)
	if want := sampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("tone produced %d samples, want %d", n, want)
	}
	if peak > 0.5+1e-9 {
		t.Errorf("peak %v exceeds volume 0.5", peak)
	}
	if peak < 0.1 {
		t.Errorf("peak %v is suspiciously quiet", peak)
	}
	if tn.Err() != nil {
		t.Errorf("unexpected error: %v", tn.Err())
	}
}

func TestToneEnvelopeStartsSilent(t *testing.T) {
	tn := newTone(440, 50*time.Millisecond, 1)
	buf := make([][2]float64, 1)
	tn.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
}

func TestToneAboveNyquistIsSilent(t *testing.T) {
	n, peak := drain(t, newTone(30000, 40*time.Millisecond, 1))
	if want := sampleRate.N(40 * time.Millisecond); n != want {
		t.Errorf("silent tone produced %d samples, want %d", n, want)
	}
	if peak != 0 {
		t.Errorf("peak = %v, want silence", peak)
	}
}

func TestFanfareLength(t *testing.T) {
	n, _ := drain(t, fanfare(0.5))
	want := len(fanfareNotes) * sampleRate.N(fanfareStep)
	if n != want {
		t.Errorf("fanfare produced %d samples, want %d", n, want)
	}
}

func TestChimeWithoutDevice(t *testing.T) {
	c := NewChime(3, false)
	if c.volume != 1 {
		t.Errorf("volume = %v, want clamped to 1", c.volume)
	}

	// 未初始化时播放应被忽略
	c.OnGesture(game.GestureEvent{Kind: types.GestureHug, Success: true})
	c.OnGesture(game.GestureEvent{Kind: types.GestureHug})
	c.Fanfare()
	c.Close()

	if !c.ToggleMute() || !c.Muted() {
		t.Error("ToggleMute should mute")
	}
	if c.ToggleMute() {
		t.Error("second ToggleMute should unmute")
	}
}

func TestEveryGestureHasATone(t *testing.T) {
	for _, kind := range types.AllGestures {
		if _, ok := gestureTones[kind]; !ok {
			t.Errorf("gesture %s has no tone", kind)
		}
	}
}
