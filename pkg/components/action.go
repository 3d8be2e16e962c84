package components

import (
	"math"

	"github.com/decker502/lovepark/pkg/types"
)

// ActionComponent 角色自身动作的状态机
//
// 状态：idle、kiss、hug、blow、heart。
// 进入某个动作时 Elapsed 与 T 归零，之后每帧累计 dt，
// 累计时间达到动作时长时自动回到 idle。
// 与 ReactionComponent 相互独立，两者可以同时处于激活状态。
type ActionComponent struct {
	// Current 当前动作
	Current types.Action

	// Elapsed 当前动作已持续的时间（秒）
	Elapsed float64

	// T 当前动作的归一化进度 [0, 1]，Elapsed / 时长
	T float64

	// Reach 手臂伸展程度 [0, 1]，由 T 推导，供渲染使用
	Reach float64

	// LastPerformedAt 每种动作上次执行的时刻（会话时间，秒）
	// 初始为 -Inf，保证开局第一帧即可执行任何动作
	LastPerformedAt [types.GestureCount]float64
}

// NewActionComponent 创建空闲状态、所有冷却就绪的动作组件
func NewActionComponent() *ActionComponent {
	a := &ActionComponent{}
	for i := range a.LastPerformedAt {
		a.LastPerformedAt[i] = math.Inf(-1)
	}
	return a
}

// IsIdle 是否空闲
func (a *ActionComponent) IsIdle() bool {
	return a.Current == types.ActionIdle
}

// CooldownReady 某种动作的冷却是否已结束
func (a *ActionComponent) CooldownReady(kind types.GestureKind, now, cooldown float64) bool {
	return now-a.LastPerformedAt[kind] >= cooldown
}
