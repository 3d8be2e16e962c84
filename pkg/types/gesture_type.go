// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// GestureKind 定义示爱动作的种类
// 取值从 0 开始连续，可直接作为定长数组下标
type GestureKind int

const (
	// GestureKiss 亲亲
	GestureKiss GestureKind = iota
	// GestureHug 抱抱
	GestureHug
	// GestureBlow 飞吻
	GestureBlow
	// GestureHeart 比心
	GestureHeart

	// GestureCount 动作种类总数
	GestureCount = 4
)

// AllGestures 按固定顺序列出所有动作种类
// 交互判定按此顺序依次尝试，保证同一帧内的处理顺序确定
var AllGestures = [GestureCount]GestureKind{GestureKiss, GestureHug, GestureBlow, GestureHeart}

// String 返回动作种类的字符串表示
func (g GestureKind) String() string {
	switch g {
	case GestureKiss:
		return "kiss"
	case GestureHug:
		return "hug"
	case GestureBlow:
		return "blow"
	case GestureHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// ParseGestureKind 将配置文件中的名字解析为动作种类
func ParseGestureKind(name string) (GestureKind, bool) {
	for _, g := range AllGestures {
		if g.String() == name {
			return g, true
		}
	}
	return 0, false
}

// Action 角色当前正在执行的动作
// 零值为 ActionIdle
type Action int

const (
	// ActionIdle 空闲
	ActionIdle Action = iota
	// ActionKiss 正在亲亲
	ActionKiss
	// ActionHug 正在抱抱
	ActionHug
	// ActionBlow 正在飞吻
	ActionBlow
	// ActionHeart 正在比心
	ActionHeart
)

// ActionFor 返回执行某种动作时对应的 Action 状态
func ActionFor(g GestureKind) Action {
	return Action(g) + 1
}

// Gesture 返回该状态对应的动作种类；空闲状态返回 false
func (a Action) Gesture() (GestureKind, bool) {
	if a <= ActionIdle || a > ActionHeart {
		return 0, false
	}
	return GestureKind(a - 1), true
}

// String 返回状态名
func (a Action) String() string {
	if g, ok := a.Gesture(); ok {
		return g.String()
	}
	return "idle"
}
