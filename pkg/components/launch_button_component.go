package components

// ButtonState 按钮交互状态
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// LaunchButtonComponent 发射按钮
// 纯数据组件，交互逻辑在 LaunchButtonSystem 中
type LaunchButtonComponent struct {
	// 按钮中心与边长（逻辑屏幕坐标）
	CenterX float64
	CenterY float64
	Size    float64

	// Label 按钮文字
	Label string

	// State 当前交互状态
	State ButtonState

	// Enabled 是否响应点击，离开 Landing 阶段后关闭
	Enabled bool

	// Pressing 上一帧指针是否处于按下状态
	Pressing bool
	// PressedInside 本次按下是否从按钮内开始，只有这样的按下松开才算点击
	PressedInside bool

	// Scale 当前显示缩放，向目标缩放平滑过渡
	Scale float64

	// RingAngle 外圈旋转角度（弧度）
	RingAngle float64

	// OnClick 点击回调
	OnClick func()
}
