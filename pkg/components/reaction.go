package components

import "github.com/decker502/lovepark/pkg/types"

// ReactionComponent 被对方示爱成功时的反应状态
//
// 只由交互判定在"对方"身上触发，到时自动清除，
// 从不阻塞也不影响角色自身的动作状态机。
type ReactionComponent struct {
	// Active 是否正在反应
	Active bool

	// Type 反应种类（kiss / hug / heart）
	Type types.GestureKind

	// T 已持续时间（秒）
	T float64

	// Duration 总时长（秒）
	Duration float64
}

// Receive 开始一次新的反应，覆盖正在进行的反应
func (r *ReactionComponent) Receive(kind types.GestureKind, duration float64) {
	r.Active = true
	r.Type = kind
	r.T = 0
	r.Duration = duration
}

// Remaining 返回反应剩余强度：刚开始为 1，结束时为 0
func (r *ReactionComponent) Remaining() float64 {
	if !r.Active || r.Duration <= 0 {
		return 0
	}
	k := 1 - r.T/r.Duration
	if k < 0 {
		return 0
	}
	return k
}
