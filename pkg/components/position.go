package components

// PositionComponent 实体在场景中的位置（像素）
// 角色存储左上角坐标；粒子存储中心坐标
type PositionComponent struct {
	X float64
	Y float64
}
