package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值。
// 超出范围的输入会先被截断。
//
// 参考：https://easings.net/

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress 返回 elapsed 在 duration 内的进度，duration <= 0 时视为已完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutCirc 圆形缓出，用于完成页副标题滑入
// 公式：f(t) = √(1 - (t-1)²)
func EaseOutCirc(t float64) float64 {
	t = Clamp01(t)
	return math.Sqrt(1 - (t-1)*(t-1))
}

// EaseOutBack 回弹缓出：先冲过终点再回落，用于徽章和数字弹入
// 公式：f(t) = 1 + c3(t-1)³ + c1(t-1)²，c1 = 1.70158，c3 = c1 + 1
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = Clamp01(t)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pulse 返回周期为 period 的 0 → 1 → 0 脉冲值
func Pulse(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*elapsed/period)
}
