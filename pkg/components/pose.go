package components

import "github.com/decker502/lovepark/pkg/types"

// Pose 渲染时对角色整体施加的挤压/拉伸变换
type Pose struct {
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // 弧度
	YOffset  float64 // 像素，负值向上
}

// ComputePose 根据动作、反应和喜悦值计算角色姿态
//
// 动作决定挤压方向（亲亲前倾压扁、抱抱后仰拉长），
// 反应在其上叠加一个随时间衰减的轻微放大，喜悦值整体放大体型。
func ComputePose(actor *ActorComponent, action *ActionComponent, react *ReactionComponent, expr *ExpressionComponent) Pose {
	p := Pose{ScaleX: 1, ScaleY: 1}

	switch action.Current {
	case types.ActionKiss:
		p.ScaleX, p.ScaleY, p.Rotation = 1.05, 0.95, actor.Facing*0.02
	case types.ActionHug:
		p.ScaleX, p.ScaleY, p.Rotation = 0.96, 1.04, -actor.Facing*0.02
	case types.ActionBlow:
		p.ScaleX, p.ScaleY = 1.03, 0.97
	case types.ActionHeart:
		p.ScaleX, p.ScaleY = 0.98, 1.02
	}

	if react.Active {
		k := react.Remaining()
		if react.Type == types.GestureHug {
			p.ScaleX *= 1 + 0.04*k
			p.ScaleY *= 1 + 0.04*k
			p.Rotation += -actor.Facing * 0.02 * k
			p.YOffset += -2 * k
		} else {
			p.ScaleX *= 1 + 0.03*k
			p.ScaleY *= 1 + 0.03*k
			p.Rotation += actor.Facing * 0.015 * k
			p.YOffset += -1 * k
		}
	}

	joy := 1 + expr.Joy*0.05
	p.ScaleX *= joy
	p.ScaleY *= joy
	return p
}

// EyesClosed 是否画闭眼
// 闭眼笑、眨眼、或正在接受亲亲时闭眼
func EyesClosed(expr *ExpressionComponent, react *ReactionComponent) bool {
	return expr.ExpressionTime > 0 || expr.IsBlinking() ||
		(react.Active && react.Type == types.GestureKiss)
}

// MouthShape 嘴型
type MouthShape int

const (
	// MouthSmile 微笑
	MouthSmile MouthShape = iota
	// MouthPucker 嘟嘴（亲亲）
	MouthPucker
	// MouthOpen 张嘴笑（抱抱）
	MouthOpen
)

// CurrentMouth 根据自身动作或收到的反应选择嘴型
func CurrentMouth(action *ActionComponent, react *ReactionComponent) MouthShape {
	if action.Current == types.ActionKiss || (react.Active && react.Type == types.GestureKiss) {
		return MouthPucker
	}
	if action.Current == types.ActionHug || (react.Active && react.Type == types.GestureHug) {
		return MouthOpen
	}
	return MouthSmile
}
