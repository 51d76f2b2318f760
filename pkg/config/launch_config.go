package config

import "time"

// 发射流程时间常量
// 倒计时与跳转延迟是固定值，不提供任何运行时配置入口
const (
	// CountdownStart 倒计时起始值
	CountdownStart = 3

	// CountdownTickInterval 每次倒计时递减的间隔
	CountdownTickInterval = 2000 * time.Millisecond

	// RedirectDelay 进入 Complete 阶段后到跳转的延迟
	RedirectDelay = 1200 * time.Millisecond

	// IntensityStep 每次倒计时递减时背景强度的增量（仅用于视觉效果）
	IntensityStep = 0.3

	// RedirectURL 流程结束后跳转的固定地址
	RedirectURL = "https://www.google.com"
)

// 窗口与布局常量
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 1280

	// WindowHeight 逻辑屏幕高度
	WindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "CYBER_FUSION // Launch"

	// LaunchButtonSize 发射按钮边长（像素）
	LaunchButtonSize = 128.0

	// LaunchButtonHoverScale 鼠标悬停时按钮的缩放比例
	LaunchButtonHoverScale = 1.1

	// LaunchButtonPressScale 按下时按钮的缩放比例
	LaunchButtonPressScale = 0.9
)

// 转场动画时长（秒）
// 仅影响显示层的淡入淡出，阶段切换本身是即时的
const (
	// LandingExitDuration 落地页退出动画（放大 + 淡出）
	LandingExitDuration = 0.8

	// CountdownExitDuration 倒计时页退出动画
	CountdownExitDuration = 0.5

	// ScreenEnterDuration 新阶段页面淡入时长
	ScreenEnterDuration = 0.5

	// DigitEnterDuration 倒计时数字弹入时长
	DigitEnterDuration = 0.3
)
