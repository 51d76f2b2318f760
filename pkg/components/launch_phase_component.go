package components

// LaunchPhase 发射流程阶段
// 只能单向推进：Landing → Countdown → Complete，Complete 为终态
type LaunchPhase int

const (
	// LaunchPhaseLanding 落地页，等待用户触发
	LaunchPhaseLanding LaunchPhase = iota
	// LaunchPhaseCountdown 倒计时进行中
	LaunchPhaseCountdown
	// LaunchPhaseComplete 倒计时结束，等待跳转
	LaunchPhaseComplete
)

var launchPhaseNames = map[LaunchPhase]string{
	LaunchPhaseLanding:   "landing",
	LaunchPhaseCountdown: "countdown",
	LaunchPhaseComplete:  "complete",
}

// String 返回阶段名称
func (p LaunchPhase) String() string {
	if s, ok := launchPhaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// GoText 倒计时归零时显示的文字
const GoText = "GO"

// LaunchPhaseComponent 发射流程状态组件
// 由 LaunchPhaseSystem 独占写入，显示层只读
type LaunchPhaseComponent struct {
	// Phase 当前阶段
	Phase LaunchPhase

	// Count 倒计时计数，始终位于 [0, CountdownStart]
	Count int

	// Intensity 背景强度，每次计数递减时增加，仅用于视觉效果
	Intensity float64

	// GoShown 计数归零后 "GO" 显示状态是否已发出
	GoShown bool

	// Navigated 跳转是否已执行
	Navigated bool

	// Closed 场景已销毁，之后不再触发任何回调
	Closed bool

	// PhaseElapsed 进入当前阶段后经过的时间（秒）
	PhaseElapsed float64

	// CountElapsed 本次计数值显示后经过的时间（秒），供进度条使用
	CountElapsed float64

	// PreviousPhase 上一个阶段
	PreviousPhase LaunchPhase
}
