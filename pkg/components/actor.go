package components

import (
	"image/color"

	"github.com/decker502/lovepark/pkg/types"
)

// ActorComponent 角色的身份与几何信息
//
// 角色之间不互相持有引用，"对方是谁" 由会话的配对表决定。
type ActorComponent struct {
	Role types.Role
	Name string

	// Facing 朝向：1 向右，-1 向左
	Facing float64

	// 尺寸由高度按固定宽高比推导，速度随尺寸线性变化，见 SetSize
	Width  float64
	Height float64
	Speed  float64

	Tint ActorTint

	// Controls 逻辑控制项 -> 按键名
	Controls map[types.Control]string
}

// ActorTint 角色配色
type ActorTint struct {
	Body  color.RGBA
	Belly color.RGBA
	Paw   color.RGBA
}

const (
	// ActorAspect 宽高比
	ActorAspect = 0.8
	// ActorBaseSpeed 高度为 ActorBaseHeight 时的移动速度（像素/秒）
	ActorBaseSpeed = 140.0
	// ActorBaseHeight 速度基准高度
	ActorBaseHeight = 140.0
	// ActorSpeedPerPixel 高度每增加 1 像素增加的速度
	ActorSpeedPerPixel = 0.25
)

// SetSize 按高度设置尺寸和速度
func (a *ActorComponent) SetSize(height float64) {
	a.Height = height
	a.Width = height * ActorAspect
	a.Speed = ActorBaseSpeed + (height-ActorBaseHeight)*ActorSpeedPerPixel
}

// Center 返回角色中心点
func (a *ActorComponent) Center(pos *PositionComponent) (float64, float64) {
	return pos.X + a.Width/2, pos.Y + a.Height/2
}

// ControlKey 返回控制项绑定的按键名，未绑定返回空串
func (a *ActorComponent) ControlKey(c types.Control) string {
	return a.Controls[c]
}
