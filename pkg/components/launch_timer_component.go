package components

import "time"

// 发射流程计时器用途
const (
	// TimerCountdownTick 倒计时递减
	TimerCountdownTick = "countdown_tick"
	// TimerRedirect 完成后的跳转延迟
	TimerRedirect = "redirect"
)

// LaunchTimerComponent 发射流程唯一的计时器句柄
//
// 同一时刻最多只有一个计时在运行：倒计时每次到期后由系统重新装填，
// 进入 Complete 后换成跳转延迟。时长以 time.Duration 累加。
type LaunchTimerComponent struct {
	// Name 当前计时用途（TimerCountdownTick / TimerRedirect）
	Name string
	// Target 目标时长
	Target time.Duration
	// Elapsed 已累计时长
	Elapsed time.Duration
	// Active 是否正在计时
	Active bool
}
