package game

import "github.com/decker502/lovepark/pkg/types"

// GestureEvent 一次动作尝试的结果
// 每次冷却通过的尝试都会产生一个事件，无论成败
type GestureEvent struct {
	Role     types.Role
	Kind     types.GestureKind
	Success  bool
	Points   float64
	Distance float64
}

// GestureListener 动作事件监听器
type GestureListener func(GestureEvent)
