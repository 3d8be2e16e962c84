package utils

import "math"

// 缓动与插值工具
//
// 所有缓动函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// Clamp 把 v 限制在 [lo, hi] 区间内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 把 v 限制在 [0, 1] 区间内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep 平滑缓入缓出
// 公式：f(t) = t²(3-2t)，两端导数为 0
// 爱心飞行轨迹和手臂伸展曲线都使用这一缓动
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// ReachCurve 伸展-收回曲线
//
// 在前 reachFraction 的进度内用 Smoothstep 从 0 升到 1，
// 之后在剩余进度内线性收回到 0。
// reachFraction 必须在 (0, 1) 区间内。
func ReachCurve(t, reachFraction float64) float64 {
	extend := Clamp01(t / reachFraction)
	retract := Clamp01((t - reachFraction) / (1 - reachFraction))
	return Smoothstep(extend) * (1 - retract)
}

// Sign 返回 v 的符号：-1、0 或 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Distance 返回两点间的直线距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
