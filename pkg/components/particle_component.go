package components

import "image/color"

// 三类粒子都是纯数据组件，位置存放在 PositionComponent 中（粒子中心）。
// 每类粒子各有独立的系统负责积分与剔除，终止条件成立的同一帧即被销毁。

// HeartParticleComponent 爱心粒子
//
// 从起点沿缓动曲线飞向终点，飞行中段叠加一个正弦上抬，
// 归一化进度 T 到达 1 时终止。
type HeartParticleComponent struct {
	StartX, StartY   float64
	TargetX, TargetY float64

	// T 归一化飞行进度 [0, 1]
	T float64
	// Duration 飞行时长（秒）
	Duration float64

	Color color.RGBA
	// Size 爱心尺寸（像素）
	Size float64
	// Wobble 尺寸脉动相位
	Wobble float64

	// Done 是否已到达终点
	Done bool
}

// ConfettiComponent 彩纸
//
// 速度以"每 1/60 秒像素"为单位，与原始手感保持一致；
// 不透明度由年龄推导，降到 0 或掉出画面底部时终止。
type ConfettiComponent struct {
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64

	Color color.RGBA
	Size  float64

	// Alpha 不透明度 [0, 1]
	Alpha float64
	// Life 已存在时间（秒）
	Life float64
}

// PetalComponent 飘落的花瓣
// 下落时水平速度按正弦摆动，掉出画面底部时终止
type PetalComponent struct {
	VX, VY float64
	// Angle 旋转角（弧度），同时驱动水平摆动
	Angle float64
	// Spin 旋转速度（弧度/秒）
	Spin float64

	Color color.RGBA
	Size  float64
}
