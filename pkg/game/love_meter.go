package game

import "github.com/decker502/lovepark/pkg/utils"

// LoveMeter 双方共享的爱心进度条
//
// 真实值只能通过 Add 做截断加法改变；显示值每帧以单极点滤波追赶真实值，
// 仅用于画面平滑。计分和庆祝判定一律使用真实值。
type LoveMeter struct {
	value         float64
	max           float64
	displayValue  float64
	smoothingRate float64
}

// NewLoveMeter 创建空的进度条
//
// 参数：
//   - maxValue: 满值，必须为正
//   - smoothingRate: 显示值每秒追赶速率
func NewLoveMeter(maxValue, smoothingRate float64) *LoveMeter {
	return &LoveMeter{
		max:           maxValue,
		smoothingRate: smoothingRate,
	}
}

// Add 增加（或减少）分数，结果截断到 [0, max]
func (m *LoveMeter) Add(points float64) {
	m.value = utils.Clamp(m.value+points, 0, m.max)
}

// Update 让显示值向真实值靠拢
// 插值系数截断到 [0, 1]，显示值永远不会越过真实值
func (m *LoveMeter) Update(dt float64) {
	m.displayValue = utils.Lerp(m.displayValue, m.value, utils.Clamp01(dt*m.smoothingRate))
}

// Reset 清零（仅在新会话开始时调用）
func (m *LoveMeter) Reset() {
	m.value = 0
	m.displayValue = 0
}

// Value 返回真实值
func (m *LoveMeter) Value() float64 { return m.value }

// DisplayValue 返回平滑后的显示值
func (m *LoveMeter) DisplayValue() float64 { return m.displayValue }

// Max 返回满值
func (m *LoveMeter) Max() float64 { return m.max }

// IsFull 真实值是否已满
func (m *LoveMeter) IsFull() bool { return m.value >= m.max }

// DisplayRatio 显示值占满值的比例 [0, 1]
func (m *LoveMeter) DisplayRatio() float64 {
	return utils.Clamp01(m.displayValue / m.max)
}

// Ratio 真实值占满值的比例 [0, 1]
func (m *LoveMeter) Ratio() float64 {
	return utils.Clamp01(m.value / m.max)
}
