package game

// Input 输入快照
//
// 核心只读取"某个按键名当前是否按住"，按键捕获和按键名映射由外部适配器负责。
type Input interface {
	IsDown(control string) bool
}

// NoInput 永远没有按键按下
type NoInput struct{}

// IsDown 总是返回 false
func (NoInput) IsDown(string) bool { return false }

// SetInput 可手动设置按键状态的输入快照，用于测试和回放
type SetInput map[string]bool

// IsDown 返回按键是否被设置为按下
func (s SetInput) IsDown(control string) bool { return s[control] }

// Press 按下按键
func (s SetInput) Press(control string) { s[control] = true }

// Release 松开按键
func (s SetInput) Release(control string) { delete(s, control) }
