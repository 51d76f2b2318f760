package systems

import (
	"testing"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/ecs"
)

func newTestButton(onClick func()) (*LaunchButtonSystem, *components.LaunchButtonComponent) {
	em := ecs.NewEntityManager()
	s := NewLaunchButtonSystem(em, 400, 300, "INITIATE", onClick)
	button, _ := ecs.GetComponent[*components.LaunchButtonComponent](em, s.GetEntity())
	return s, button
}

// TestLaunchButtonSystem_States 测试交互状态
// inputs 按帧依次应用，检查最后一帧后的状态与点击次数
func TestLaunchButtonSystem_States(t *testing.T) {
	inside := PointerInput{X: 400, Y: 300}
	outside := PointerInput{X: 10, Y: 10}
	press := func(in PointerInput) PointerInput { in.Pressed = true; return in }
	release := func(in PointerInput) PointerInput { in.Released = true; return in }

	tests := []struct {
		name   string
		inputs []PointerInput
		want   components.ButtonState
		clicks int
	}{
		{"鼠标在按钮外", []PointerInput{outside}, components.ButtonNormal, 0},
		{"悬停", []PointerInput{inside}, components.ButtonHovered, 0},
		{"按下", []PointerInput{inside, press(inside)}, components.ButtonPressed, 0},
		{
			name:   "按钮内按下并松开触发点击",
			inputs: []PointerInput{press(inside), release(PointerInput{X: 420, Y: 280})},
			want:   components.ButtonHovered,
			clicks: 1,
		},
		{
			name:   "按钮内按下、按钮外松开不触发",
			inputs: []PointerInput{press(inside), press(outside), release(outside)},
			want:   components.ButtonNormal,
		},
		{
			name:   "按钮外按下、拖入按钮松开不触发",
			inputs: []PointerInput{press(outside), press(inside), release(inside)},
			want:   components.ButtonHovered,
		},
		{
			name:   "拖入按钮时不显示按下",
			inputs: []PointerInput{press(outside), press(inside)},
			want:   components.ButtonHovered,
		},
		{
			name: "松开一个触点时另一个仍按下也触发点击",
			inputs: []PointerInput{
				press(inside),
				press(inside),
				{X: 400, Y: 300, Pressed: true, Released: true},
			},
			want:   components.ButtonHovered,
			clicks: 1,
		},
		{"没有按下的松开不触发", []PointerInput{release(inside)}, components.ButtonHovered, 0},
		{"Enter 触发点击", []PointerInput{{X: 10, Y: 10, KeyActivated: true}}, components.ButtonNormal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clicks := 0
			s, button := newTestButton(func() { clicks++ })

			for _, in := range tt.inputs {
				s.Apply(in, 1.0/60.0)
			}

			if button.State != tt.want {
				t.Errorf("State: got %v, want %v", button.State, tt.want)
			}
			if clicks != tt.clicks {
				t.Errorf("clicks: got %d, want %d", clicks, tt.clicks)
			}
		})
	}
}

// TestLaunchButtonSystem_SecondClick 测试松开后可以再次点击
func TestLaunchButtonSystem_SecondClick(t *testing.T) {
	clicks := 0
	s, button := newTestButton(func() { clicks++ })

	for i := 0; i < 2; i++ {
		s.Apply(PointerInput{X: 400, Y: 300, Pressed: true}, 1.0/60.0)
		s.Apply(PointerInput{X: 400, Y: 300, Released: true}, 1.0/60.0)
	}
	if clicks != 2 {
		t.Errorf("clicks: got %d, want 2", clicks)
	}
	if button.PressedInside || button.Pressing {
		t.Error("松开后不应保留按下状态")
	}
}

// TestLaunchButtonSystem_Disabled 测试禁用后不响应
func TestLaunchButtonSystem_Disabled(t *testing.T) {
	clicks := 0
	s, button := newTestButton(func() { clicks++ })
	s.SetEnabled(false)

	s.Apply(PointerInput{X: 400, Y: 300, Released: true, KeyActivated: true}, 1.0/60.0)

	if clicks != 0 {
		t.Errorf("禁用后不应触发点击, clicks=%d", clicks)
	}
	if button.State != components.ButtonDisabled {
		t.Errorf("State: got %v, want ButtonDisabled", button.State)
	}
}

// TestLaunchButtonSystem_Scale 测试悬停缩放
func TestLaunchButtonSystem_Scale(t *testing.T) {
	s, button := newTestButton(nil)

	for i := 0; i < 120; i++ {
		s.Apply(PointerInput{X: 400, Y: 300}, 1.0/60.0)
	}
	if button.Scale < 1.09 || button.Scale > 1.1 {
		t.Errorf("悬停 2 秒后 Scale 应接近 1.1, got %v", button.Scale)
	}

	for i := 0; i < 120; i++ {
		s.Apply(PointerInput{X: 400, Y: 300, Pressed: true}, 1.0/60.0)
	}
	if button.Scale < 0.9 || button.Scale > 0.91 {
		t.Errorf("按下 2 秒后 Scale 应接近 0.9, got %v", button.Scale)
	}

	if button.RingAngle <= 0 {
		t.Error("外圈应随时间旋转")
	}
}
