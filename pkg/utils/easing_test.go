package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 测试所有缓动函数的端点
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic": EaseOutCubic,
		"EaseOutCirc":  EaseOutCirc,
		"EaseOutBack":  EaseOutBack,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
			// 超出范围的输入被截断
			if got := fn(2); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(2) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出中点
func TestEaseOutCubic(t *testing.T) {
	// 1 - (1-0.5)^3 = 0.875
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 0.001 {
		t.Errorf("EaseOutCubic(0.5) = %v, 期望 0.875", got)
	}
}

// TestEaseOutBackOvershoot 测试回弹缓出会越过终点
func TestEaseOutBackOvershoot(t *testing.T) {
	overshoot := false
	for p := 0.5; p < 1; p += 0.05 {
		if EaseOutBack(p) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("EaseOutBack 应在接近终点时超过 1")
	}
}

// TestProgress 测试进度计算
func TestProgress(t *testing.T) {
	tests := []struct {
		name              string
		elapsed, duration float64
		want              float64
	}{
		{"起点", 0, 0.8, 0},
		{"中点", 0.4, 0.8, 0.5},
		{"超出", 2, 0.8, 1},
		{"负值", -1, 0.8, 0},
		{"零时长", 0.1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, tt.duration); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Progress(%v, %v) = %v, 期望 %v", tt.elapsed, tt.duration, got, tt.want)
			}
		})
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(1, 1.5, 0.5); got != 1.25 {
		t.Errorf("Lerp(1, 1.5, 0.5) = %v, 期望 1.25", got)
	}
}

// TestPulse 测试脉冲
func TestPulse(t *testing.T) {
	if got := Pulse(0, 0.5); math.Abs(got) > 1e-9 {
		t.Errorf("Pulse(0) = %v, 期望 0", got)
	}
	if got := Pulse(0.25, 0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("Pulse(半周期) = %v, 期望 1", got)
	}
	if got := Pulse(1, 0); got != 0 {
		t.Errorf("Pulse(period=0) = %v, 期望 0", got)
	}
}
