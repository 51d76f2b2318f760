package systems

import (
	"math"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 外圈旋转一周的时间（秒）
const launchButtonRingPeriod = 20.0

// PointerInput 一帧的指针与按键输入
// 与 ebiten 解耦，测试可以直接构造
type PointerInput struct {
	X, Y float64
	// Pressed 鼠标左键或触点按下中
	Pressed bool
	// Released 本帧在 (X, Y) 处松开
	Released bool
	// KeyActivated 本帧按下 Enter 或 Space
	KeyActivated bool
}

// ReadPointerInput 读取本帧的鼠标、触摸和键盘输入
func ReadPointerInput() PointerInput {
	mx, my := ebiten.CursorPosition()
	keyActivated := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in := PointerInput{
		X:            float64(mx),
		Y:            float64(my),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Released:     inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		KeyActivated: keyActivated,
	}

	// 触摸：松开的触点使用上一帧的位置，且优先于仍按下的触点
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		in.X, in.Y = float64(tx), float64(ty)
		in.Released = true
	}
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		if !in.Released {
			tx, ty := ebiten.TouchPosition(touches[0])
			in.X, in.Y = float64(tx), float64(ty)
		}
		in.Pressed = true
	}
	return in
}

// LaunchButtonSystem 发射按钮交互系统
//
// 职责：
//   - 检测悬停与按下，更新按钮状态和缩放
//   - 在按钮内按下并在按钮内松开，或按下 Enter/Space 时触发 OnClick
//   - Enabled 为 false 时不响应交互
type LaunchButtonSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
}

// NewLaunchButtonSystem 创建发射按钮
func NewLaunchButtonSystem(em *ecs.EntityManager, centerX, centerY float64, label string, onClick func()) *LaunchButtonSystem {
	s := &LaunchButtonSystem{entityManager: em}
	s.entity = entities.NewLaunchButton(em, centerX, centerY, label, onClick)
	return s
}

// Apply 使用给定输入更新按钮
func (s *LaunchButtonSystem) Apply(in PointerInput, deltaTime float64) {
	button, ok := ecs.GetComponent[*components.LaunchButtonComponent](s.entityManager, s.entity)
	if !ok {
		return
	}

	button.RingAngle = math.Mod(button.RingAngle+deltaTime*2*math.Pi/launchButtonRingPeriod, 2*math.Pi)

	if !button.Enabled {
		button.State = components.ButtonDisabled
		button.Scale = approach(button.Scale, 1, deltaTime)
		button.Pressing = false
		button.PressedInside = false
		return
	}

	hovered := s.contains(button, in.X, in.Y)
	clicked := in.KeyActivated

	// 新的按下：记录起点是否在按钮内
	if in.Pressed && !button.Pressing && !in.Released {
		button.PressedInside = hovered
	}
	button.Pressing = in.Pressed

	switch {
	case in.Released:
		if hovered && button.PressedInside {
			clicked = true
		}
		button.PressedInside = false
		if hovered {
			button.State = components.ButtonHovered
		} else {
			button.State = components.ButtonNormal
		}
	case hovered && in.Pressed && button.PressedInside:
		button.State = components.ButtonPressed
	case hovered:
		button.State = components.ButtonHovered
	default:
		button.State = components.ButtonNormal
	}

	target := 1.0
	switch button.State {
	case components.ButtonHovered:
		target = config.LaunchButtonHoverScale
	case components.ButtonPressed:
		target = config.LaunchButtonPressScale
	}
	button.Scale = approach(button.Scale, target, deltaTime)

	if clicked && button.OnClick != nil {
		button.OnClick()
	}
}

// SetEnabled 启用或禁用按钮
func (s *LaunchButtonSystem) SetEnabled(enabled bool) {
	if button, ok := ecs.GetComponent[*components.LaunchButtonComponent](s.entityManager, s.entity); ok {
		button.Enabled = enabled
	}
}

// GetEntity 返回按钮实体ID
func (s *LaunchButtonSystem) GetEntity() ecs.EntityID {
	return s.entity
}

// contains 命中测试使用未缩放的按钮区域
func (s *LaunchButtonSystem) contains(button *components.LaunchButtonComponent, x, y float64) bool {
	half := button.Size / 2
	return x >= button.CenterX-half && x <= button.CenterX+half &&
		y >= button.CenterY-half && y <= button.CenterY+half
}

// approach 以指数方式向目标值靠近
func approach(current, target, deltaTime float64) float64 {
	k := math.Min(1, deltaTime*12)
	return current + (target-current)*k
}
