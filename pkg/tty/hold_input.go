// Package tty 终端前端：用 tcell 显示公园、采集按键，用 beep 播放提示音
//
// 终端只报告按键事件，不报告松开，所以按住状态通过"最近一次事件距今是否超时"来近似。
// 所有会话状态的修改都发生在 Runner 的帧循环 goroutine 上。
package tty

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTimeout 按键事件之后视为仍然按住的时长
// 需要覆盖终端自动重复的首次延迟，否则长按移动会卡顿
const DefaultHoldTimeout = 500 * time.Millisecond

// HoldInput 用按键时间戳模拟按住状态，实现 game.Input
type HoldInput struct {
	timeout time.Duration
	now     func() time.Time
	keys    map[string]time.Time
}

// NewHoldInput 创建按键输入，timeout <= 0 时使用默认值
func NewHoldInput(timeout time.Duration) *HoldInput {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldInput{
		timeout: timeout,
		now:     time.Now,
		keys:    make(map[string]time.Time),
	}
}

// KeyName 把 tcell 按键转换成配置文件使用的按键名
// 字母统一为小写，方向键使用 ArrowLeft/ArrowRight/ArrowUp/ArrowDown
func KeyName(key tcell.Key, ch rune) (string, bool) {
	switch key {
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyRune:
		if ch == ' ' {
			return "space", true
		}
		return strings.ToLower(string(ch)), true
	}
	return "", false
}

// Press 记录一次按键事件
func (h *HoldInput) Press(name string) {
	h.keys[strings.ToLower(name)] = h.now()
}

// HandleKey 记录 tcell 按键事件，返回是否识别
func (h *HoldInput) HandleKey(key tcell.Key, ch rune) bool {
	name, ok := KeyName(key, ch)
	if !ok {
		return false
	}
	h.Press(name)
	return true
}

// IsDown 返回按键最近一次事件是否还在超时时间内
func (h *HoldInput) IsDown(control string) bool {
	t, ok := h.keys[strings.ToLower(control)]
	if !ok {
		return false
	}
	return h.now().Sub(t) < h.timeout
}

// Reset 清空所有按键状态
func (h *HoldInput) Reset() {
	clear(h.keys)
}
