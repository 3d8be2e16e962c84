package game

import (
	"math"
	"time"
)

// DefaultDeltaTime 无法得到有效帧间隔时使用的步长
const DefaultDeltaTime = 1.0 / 60.0

// ClampDeltaTime 把帧间隔限制在 (0, maxStep] 内
//
// 非正数或 NaN（时钟回拨、首帧）按默认步长处理，
// 过大的间隔（卡顿、窗口切到后台）截断为 maxStep。
func ClampDeltaTime(dt, maxStep float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		dt = DefaultDeltaTime
	}
	if dt > maxStep {
		return maxStep
	}
	return dt
}

// Clock 帧时钟
// 每帧调用一次 Tick，得到截断后的帧间隔
type Clock struct {
	maxStep float64
	last    time.Time
	now     func() time.Time
}

// NewClock 创建帧时钟
func NewClock(maxStep float64) *Clock {
	return &Clock{maxStep: maxStep, now: time.Now}
}

// Tick 返回距上次 Tick 的截断后间隔（秒），首次调用返回默认步长
func (c *Clock) Tick() float64 {
	t := c.now()
	var dt float64
	if !c.last.IsZero() {
		dt = t.Sub(c.last).Seconds()
	}
	c.last = t
	return ClampDeltaTime(dt, c.maxStep)
}

// Reset 丢弃上次时间戳，下一次 Tick 返回默认步长
func (c *Clock) Reset() {
	c.last = time.Time{}
}
