package tty

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/lovepark/pkg/game"
	"github.com/decker502/lovepark/pkg/types"
)

const sampleRate = beep.SampleRate(44100)

// 每种动作成功时的音高（Hz）
var gestureTones = map[types.GestureKind]float64{
	types.GestureKiss:  880.00, // A5
	types.GestureHug:   523.25, // C5
	types.GestureBlow:  987.77, // B5
	types.GestureHeart: 659.25, // E5
}

const (
	missTone      = 220.0
	toneDuration  = 120 * time.Millisecond
	missDuration  = 70 * time.Millisecond
	fanfareStep   = 110 * time.Millisecond
	fanfareVolume = 0.8
)

// 庆祝时的上行琶音 C5 E5 G5 C6
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// envelope 给音源加上线性起音和线性衰减，total 为整段采样数
type envelope struct {
	streamer beep.Streamer
	volume   float64
	position int
	total    int
	attack   int
}

// newTone 创建带包络的正弦音，volume 为峰值振幅 [0, 1]
func newTone(freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sampleRate.N(d)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		// 频率超出采样率范围
		return beep.Silence(total)
	}
	attack := total / 10
	if attack < 1 {
		attack = 1
	}
	return &envelope{
		streamer: beep.Take(total, sine),
		volume:   volume,
		total:    total,
		attack:   attack,
	}
}

func (e *envelope) gain() float64 {
	if e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	rest := e.total - e.attack
	if rest <= 0 {
		return 0
	}
	return 1 - float64(e.position-e.attack)/float64(rest)
}

// Stream 实现 beep.Streamer
func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain() * e.volume
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

// Err 实现 beep.Streamer
func (e *envelope) Err() error { return e.streamer.Err() }

// Chime 动作提示音
//
// 成功的动作按种类播放不同音高，未命中播放一声短促低音，庆祝开始时播放琶音。
// 音频初始化失败不是致命错误，之后的所有播放都会被忽略。
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewChime 创建提示音播放器，volume 会被限制在 [0, 1]
func NewChime(volume float64, muted bool) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
		muted:  muted,
	}
}

// Initialize 打开音频设备
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close 停止所有声音并关闭音频设备
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// ToggleMute 切换静音，返回切换后是否静音
func (c *Chime) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Muted 返回是否静音
func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// OnGesture 动作事件监听器，注册到会话上
func (c *Chime) OnGesture(ev game.GestureEvent) {
	if !ev.Success {
		c.play(newTone(missTone, missDuration, c.volume*0.5))
		return
	}
	freq, ok := gestureTones[ev.Kind]
	if !ok {
		return
	}
	c.play(newTone(freq, toneDuration, c.volume))
}

// Fanfare 播放庆祝琶音
func (c *Chime) Fanfare() {
	c.play(fanfare(c.volume * fanfareVolume))
}

// fanfare 依次拼接琶音的每个音
func fanfare(volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for _, f := range fanfareNotes {
		notes = append(notes, newTone(f, fanfareStep, volume))
	}
	return beep.Seq(notes...)
}

func (c *Chime) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}
