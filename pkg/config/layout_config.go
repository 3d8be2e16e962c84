package config

// 窗口与场景布局常量
// 场景坐标以逻辑像素为单位，原点在左上角，Y 轴向下

const (
	// GameWindowWidth 逻辑画面宽度
	GameWindowWidth = 960

	// GameWindowHeight 逻辑画面高度
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Love Park"

	// MeterBarMaxWidth 进度条最大宽度
	MeterBarMaxWidth = 720.0

	// MeterBarHeight 进度条高度
	MeterBarHeight = 18.0

	// MeterBarY 进度条顶部Y坐标
	MeterBarY = 54.0
)

// ActorHeightFor 根据画面高度计算角色高度
func (l LayoutConfig) ActorHeightFor(sceneHeight float64) float64 {
	h := sceneHeight * l.ActorHeightRatio
	if h < l.ActorMinHeight {
		return l.ActorMinHeight
	}
	if h > l.ActorMaxHeight {
		return l.ActorMaxHeight
	}
	return h
}

// GroundY 返回地面线的Y坐标（角色脚底）
func (l LayoutConfig) GroundY(sceneHeight float64) float64 {
	return sceneHeight - l.GroundOffset
}

// Bounds 返回角色可活动的水平范围 [left, right]
func (l LayoutConfig) Bounds(sceneWidth float64) (left, right float64) {
	return l.Margin, sceneWidth - l.Margin
}
