package game

// ScreenPulse 全屏脉冲强度
// 由成功的抱抱设置，随后线性衰减到 0，只影响画面
type ScreenPulse struct {
	value float64
	decay float64
}

// NewScreenPulse 创建屏幕脉冲，decay 为每秒衰减量
func NewScreenPulse(decay float64) *ScreenPulse {
	return &ScreenPulse{decay: decay}
}

// Trigger 把强度设置为 v（覆盖当前值）
func (p *ScreenPulse) Trigger(v float64) {
	p.value = v
}

// Update 线性衰减
func (p *ScreenPulse) Update(dt float64) {
	if p.value <= 0 {
		return
	}
	p.value -= dt * p.decay
	if p.value < 0 {
		p.value = 0
	}
}

// Reset 清零
func (p *ScreenPulse) Reset() { p.value = 0 }

// Value 返回当前强度
func (p *ScreenPulse) Value() float64 { return p.value }
