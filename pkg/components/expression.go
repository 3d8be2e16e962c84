package components

// ExpressionComponent 角色的表情与纯装饰状态
// 与动作状态机在同一帧更新，但不影响任何玩法判定
type ExpressionComponent struct {
	// AnimTime 角色存在的总时间，驱动呼吸起伏和走路摆腿
	AnimTime float64

	// ExpressionTime 闭眼笑剩余时间（秒）
	ExpressionTime float64

	// BlinkT 距下次眨眼的倒计时
	BlinkT float64
	// BlinkDur 本次眨眼剩余闭眼时间
	BlinkDur float64

	// EyeLook 视线方向 [-1, 1]，负值看向左侧
	EyeLook float64

	// Joy 喜悦值 [0, 1]，放大呼吸幅度和体型，随时间线性衰减
	Joy float64
}

// IsBlinking 是否正在眨眼
func (e *ExpressionComponent) IsBlinking() bool {
	return e.BlinkDur > 0
}
