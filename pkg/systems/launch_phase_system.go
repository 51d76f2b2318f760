package systems

import (
	"log"
	"strconv"
	"time"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/entities"
)

// Navigator 执行最终跳转
// 跳转是"发出即忘"的：错误只记录日志，不重试、不回传给状态机
type Navigator interface {
	Navigate(url string) error
}

// NavigatorFunc 将普通函数适配为 Navigator
type NavigatorFunc func(url string) error

// Navigate 调用 f(url)
func (f NavigatorFunc) Navigate(url string) error {
	return f(url)
}

// LaunchPhaseSystem 发射流程阶段控制器
//
// 状态机：
//
//	Landing --Launch()--> Countdown --(计数归零)--> Complete --(1200ms)--> 跳转
//
// 此系统负责：
//   - 持有阶段与倒计时计数（LaunchPhaseComponent）
//   - 持有唯一的计时器句柄（LaunchTimerComponent），到期后重新装填而不是嵌套调度
//   - 计数归零时进入 Complete 并装填跳转延迟
//
// 遵循零耦合原则：
//   - 音效、粒子等装饰子系统通过回调接入，控制器不依赖它们
//   - 时间只通过 Update/Advance 推进，测试可以精确控制
type LaunchPhaseSystem struct {
	entityManager *ecs.EntityManager
	phaseEntity   ecs.EntityID
	navigator     Navigator
	redirectURL   string

	// 外部回调（遵循零耦合原则）
	onLaunch   func()          // 进入 Countdown
	onTick     func(count int) // 每次计数递减，count 为递减后的值
	onComplete func()          // 进入 Complete
	onNavigate func(url string)
}

// NewLaunchPhaseSystem 创建发射流程控制器
//
// 参数：
//   - em: 实体管理器
//   - navigator: 跳转执行者，可为 nil（只触发 OnNavigate 回调）
//
// 返回：
//   - 初始阶段为 Landing 的控制器
func NewLaunchPhaseSystem(em *ecs.EntityManager, navigator Navigator) *LaunchPhaseSystem {
	s := &LaunchPhaseSystem{
		entityManager: em,
		navigator:     navigator,
		redirectURL:   config.RedirectURL,
	}

	s.phaseEntity = entities.NewLaunchPhaseEntity(em)

	log.Printf("[LaunchPhaseSystem] Initialized (Entity ID: %d), phase=%s", s.phaseEntity, components.LaunchPhaseLanding)
	return s
}

// SetOnLaunch 设置进入 Countdown 的回调
func (s *LaunchPhaseSystem) SetOnLaunch(fn func()) { s.onLaunch = fn }

// SetOnTick 设置计数递减回调
func (s *LaunchPhaseSystem) SetOnTick(fn func(count int)) { s.onTick = fn }

// SetOnComplete 设置进入 Complete 的回调
func (s *LaunchPhaseSystem) SetOnComplete(fn func()) { s.onComplete = fn }

// SetOnNavigate 设置跳转回调，在 Navigator 之后调用
func (s *LaunchPhaseSystem) SetOnNavigate(fn func(url string)) { s.onNavigate = fn }

// GetPhaseEntity 返回阶段实体ID
func (s *LaunchPhaseSystem) GetPhaseEntity() ecs.EntityID {
	return s.phaseEntity
}

// Launch 从 Landing 进入 Countdown
//
// 仅在 Landing 阶段生效；其他阶段（包括重复点击）直接忽略，
// 保证同一会话只会启动一条计时链。
//
// 返回：
//   - bool: 是否发生了阶段切换
func (s *LaunchPhaseSystem) Launch() bool {
	phase, timer, ok := s.state()
	if !ok || phase.Closed {
		return false
	}

	if phase.Phase != components.LaunchPhaseLanding {
		log.Printf("[LaunchPhaseSystem] Launch ignored, phase=%s", phase.Phase)
		return false
	}

	s.enterPhase(phase, components.LaunchPhaseCountdown)
	phase.Count = config.CountdownStart
	phase.CountElapsed = 0
	s.armTimer(timer, components.TimerCountdownTick, config.CountdownTickInterval)

	log.Printf("[LaunchPhaseSystem] Launch: countdown started at %d", phase.Count)

	if s.onLaunch != nil {
		s.onLaunch()
	}
	return true
}

// Update 按帧推进
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (s *LaunchPhaseSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Advance 推进 d 时长
//
// d 跨越多个到期点时按顺序逐个触发，剩余时长继续累计到重新装填的计时器上，
// 因此大步长推进和逐帧推进得到同样的事件序列。
func (s *LaunchPhaseSystem) Advance(d time.Duration) {
	phase, timer, ok := s.state()
	if !ok {
		return
	}

	for d > 0 && !phase.Closed {
		step := d
		expired := false
		if timer.Active {
			if remaining := timer.Target - timer.Elapsed; remaining <= step {
				step = remaining
				expired = true
			}
		}

		if timer.Active {
			timer.Elapsed += step
		}
		phase.PhaseElapsed += step.Seconds()
		phase.CountElapsed += step.Seconds()
		d -= step

		if expired {
			timer.Active = false
			s.onTimerExpired(phase, timer)
		}
	}
}

// Close 销毁时调用：停止计时器，之后不再触发任何回调
func (s *LaunchPhaseSystem) Close() {
	phase, timer, ok := s.state()
	if !ok || phase.Closed {
		return
	}
	timer.Active = false
	phase.Closed = true
	log.Printf("[LaunchPhaseSystem] Closed at phase=%s", phase.Phase)
}

// GetPhase 返回当前阶段
func (s *LaunchPhaseSystem) GetPhase() components.LaunchPhase {
	phase, _, ok := s.state()
	if !ok {
		return components.LaunchPhaseLanding
	}
	return phase.Phase
}

// GetCount 返回倒计时计数
func (s *LaunchPhaseSystem) GetCount() int {
	phase, _, ok := s.state()
	if !ok {
		return config.CountdownStart
	}
	return phase.Count
}

// GetIntensity 返回背景强度
func (s *LaunchPhaseSystem) GetIntensity() float64 {
	phase, _, ok := s.state()
	if !ok {
		return 0
	}
	return phase.Intensity
}

// IsNavigated 跳转是否已执行
func (s *LaunchPhaseSystem) IsNavigated() bool {
	phase, _, ok := s.state()
	return ok && phase.Navigated
}

// IsTimerActive 计时器是否在运行
func (s *LaunchPhaseSystem) IsTimerActive() bool {
	_, timer, ok := s.state()
	return ok && timer.Active
}

// DisplayText 返回倒计时当前显示的文字
func (s *LaunchPhaseSystem) DisplayText() string {
	return CountdownDisplayText(s.GetCount())
}

// CountdownDisplayText 计数为 0 时显示 "GO"，否则显示数字
func CountdownDisplayText(count int) string {
	if count <= 0 {
		return components.GoText
	}
	return strconv.Itoa(count)
}

// onTimerExpired 处理计时器到期
func (s *LaunchPhaseSystem) onTimerExpired(phase *components.LaunchPhaseComponent, timer *components.LaunchTimerComponent) {
	switch timer.Name {
	case components.TimerCountdownTick:
		s.tick(phase, timer)
	case components.TimerRedirect:
		s.navigate(phase)
	}
}

// tick 倒计时递减一次
func (s *LaunchPhaseSystem) tick(phase *components.LaunchPhaseComponent, timer *components.LaunchTimerComponent) {
	if phase.Phase != components.LaunchPhaseCountdown || phase.Count <= 0 {
		return
	}

	phase.Count--
	phase.CountElapsed = 0
	phase.Intensity += config.IntensityStep
	log.Printf("[LaunchPhaseSystem] Tick: count=%d intensity=%.1f", phase.Count, phase.Intensity)

	if s.onTick != nil {
		s.onTick(phase.Count)
	}
	if phase.Closed {
		return
	}

	if phase.Count > 0 {
		s.armTimer(timer, components.TimerCountdownTick, config.CountdownTickInterval)
		return
	}

	// 计数归零：先发出 GO 显示状态，再执行完成回调
	phase.GoShown = true
	s.complete(phase, timer)
}

// complete 进入 Complete 阶段并装填跳转延迟
func (s *LaunchPhaseSystem) complete(phase *components.LaunchPhaseComponent, timer *components.LaunchTimerComponent) {
	if phase.Phase == components.LaunchPhaseComplete {
		return
	}

	s.enterPhase(phase, components.LaunchPhaseComplete)
	s.armTimer(timer, components.TimerRedirect, config.RedirectDelay)
	log.Printf("[LaunchPhaseSystem] Complete, redirect in %v", config.RedirectDelay)

	if s.onComplete != nil {
		s.onComplete()
	}
}

// navigate 执行跳转，只会发生一次
func (s *LaunchPhaseSystem) navigate(phase *components.LaunchPhaseComponent) {
	if phase.Navigated {
		return
	}
	phase.Navigated = true

	log.Printf("[LaunchPhaseSystem] Navigate: %s", s.redirectURL)
	if s.navigator != nil {
		if err := s.navigator.Navigate(s.redirectURL); err != nil {
			log.Printf("[LaunchPhaseSystem] Warning: navigation failed: %v", err)
		}
	}
	if s.onNavigate != nil {
		s.onNavigate(s.redirectURL)
	}
}

// enterPhase 切换阶段并重置阶段计时
func (s *LaunchPhaseSystem) enterPhase(phase *components.LaunchPhaseComponent, next components.LaunchPhase) {
	log.Printf("[LaunchPhaseSystem] Phase %s -> %s", phase.Phase, next)
	phase.PreviousPhase = phase.Phase
	phase.Phase = next
	phase.PhaseElapsed = 0
}

// armTimer 重新装填唯一的计时器
func (s *LaunchPhaseSystem) armTimer(timer *components.LaunchTimerComponent, name string, target time.Duration) {
	timer.Name = name
	timer.Target = target
	timer.Elapsed = 0
	timer.Active = true
}

// state 获取阶段组件与计时器组件
func (s *LaunchPhaseSystem) state() (*components.LaunchPhaseComponent, *components.LaunchTimerComponent, bool) {
	phase, ok := ecs.GetComponent[*components.LaunchPhaseComponent](s.entityManager, s.phaseEntity)
	if !ok {
		return nil, nil, false
	}
	timer, ok := ecs.GetComponent[*components.LaunchTimerComponent](s.entityManager, s.phaseEntity)
	if !ok {
		return nil, nil, false
	}
	return phase, timer, true
}
