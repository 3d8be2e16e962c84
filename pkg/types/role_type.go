package types

// Role 角色的固定身份标签
// 一局游戏中恰好有两个角色，各自拥有固定的配色和按键
type Role int

const (
	// RoleBubu 左侧角色（粉色熊）
	RoleBubu Role = iota
	// RoleDudu 右侧角色（白色熊）
	RoleDudu
)

// AllRoles 按固定顺序列出两个角色
// 每帧的输入采样与交互判定都按此顺序进行
var AllRoles = [2]Role{RoleBubu, RoleDudu}

// String 返回角色标签
func (r Role) String() string {
	switch r {
	case RoleBubu:
		return "bubu"
	case RoleDudu:
		return "dudu"
	default:
		return "unknown"
	}
}

// Control 逻辑控制项
// 每个角色把这些控制项绑定到各自的按键名上
type Control int

const (
	// ControlLeft 向左移动
	ControlLeft Control = iota
	// ControlRight 向右移动
	ControlRight
	// ControlKiss 亲亲
	ControlKiss
	// ControlHug 抱抱
	ControlHug
	// ControlBlow 飞吻
	ControlBlow
	// ControlHeart 比心
	ControlHeart
)

// GestureControl 返回触发某种动作的控制项
func GestureControl(g GestureKind) Control {
	return ControlKiss + Control(g)
}

// String 返回控制项名称（与配置文件中的键一致）
func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlKiss:
		return "kiss"
	case ControlHug:
		return "hug"
	case ControlBlow:
		return "blow"
	case ControlHeart:
		return "heart"
	default:
		return "unknown"
	}
}
