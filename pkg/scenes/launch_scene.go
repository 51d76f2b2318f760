package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/game"
	"github.com/decker502/cyberfusion/pkg/systems"
	"github.com/decker502/cyberfusion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Layout constants (逻辑屏幕坐标)
const (
	LaunchButtonX = config.WindowWidth / 2
	LaunchButtonY = config.WindowHeight/2 + 150

	// HUD 四角留白
	HUDMargin = 32.0
)

// screenTransition 阶段页面的退出/进入动画
// 阶段切换立即发生，显示层先播放旧页面退出，再淡入新页面
type screenTransition struct {
	shown      components.LaunchPhase // 当前显示（或正在退出）的页面
	exiting    bool
	exitTime   float64
	exitLength float64
	enterTime  float64
}

// LaunchScene 发射流程场景
//
// 阶段状态由 LaunchPhaseSystem 持有，场景只读取状态并绘制；
// 唯一写回控制器的事件是按钮触发的 Launch()。
type LaunchScene struct {
	theme *config.ThemeConfig
	audio *game.AudioManager
	fonts *utils.FontSet

	entityManager *ecs.EntityManager
	phaseSystem   *systems.LaunchPhaseSystem
	buttonSystem  *systems.LaunchButtonSystem
	vortexSystem  *systems.VortexSystem
	hudSystem     *systems.HUDSystem

	// 显示层状态
	elapsed      float64 // 场景运行时间（秒）
	digitElapsed float64 // 当前倒计时数字出现后的时间
	transition   screenTransition
	closed       bool

	// 着色器（降级模式下为 nil）
	shaders *shaderSet
}

// NewLaunchScene 创建发射流程场景
//
// 参数：
//   - theme: 主题配置，nil 时使用内置主题
//   - navigator: 跳转执行者
//   - am: 音频管理器，可为 nil（静音）
//   - rng: 随机源，nil 时使用随机种子
//
// 返回：
//   - *LaunchScene: 初始处于 Landing 阶段的场景
//   - error: 字体加载失败
func NewLaunchScene(theme *config.ThemeConfig, navigator systems.Navigator, am *game.AudioManager, rng *rand.Rand) (*LaunchScene, error) {
	if theme == nil {
		theme = config.DefaultThemeConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	fonts, err := utils.LoadFontSet()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	s := &LaunchScene{
		theme:         theme,
		audio:         am,
		fonts:         fonts,
		entityManager: ecs.NewEntityManager(),
		transition: screenTransition{
			shown: components.LaunchPhaseLanding,
		},
	}

	s.phaseSystem = systems.NewLaunchPhaseSystem(s.entityManager, navigator)
	s.buttonSystem = systems.NewLaunchButtonSystem(s.entityManager, LaunchButtonX, LaunchButtonY, theme.Button.Label, s.onButtonClick)
	s.vortexSystem = systems.NewVortexSystem(s.entityManager, theme.Vortex, rng)
	s.hudSystem = systems.NewHUDSystem(s.entityManager, theme.HUD.RefreshInterval, rng)

	// 装饰回调：失败不会影响阶段推进
	s.phaseSystem.SetOnLaunch(s.onLaunch)
	s.phaseSystem.SetOnTick(s.onTick)
	s.phaseSystem.SetOnComplete(s.onComplete)

	am.Preload(game.SoundLaunch, game.SoundWarp,
		game.BeepSoundID(2), game.BeepSoundID(1), game.BeepSoundID(0))

	log.Printf("[LaunchScene] Created %d entities, %d vortex particles", s.entityManager.Count(), theme.Vortex.ParticleCount)
	return s, nil
}

// Update 读取输入并推进所有系统
func (s *LaunchScene) Update(deltaTime float64) {
	s.update(deltaTime, systems.ReadPointerInput())
}

// update 使用给定输入推进一帧
func (s *LaunchScene) update(deltaTime float64, in systems.PointerInput) {
	if s.closed {
		return
	}

	s.elapsed += deltaTime
	s.digitElapsed += deltaTime

	// 按钮可能触发 Launch，需要在推进计时器之前处理
	s.buttonSystem.Apply(in, deltaTime)
	s.phaseSystem.Update(deltaTime)
	if s.closed {
		return
	}

	s.vortexSystem.SetIntensity(s.phaseSystem.GetIntensity())
	s.vortexSystem.Update(deltaTime)
	s.hudSystem.Update(deltaTime)

	s.updateTransition(deltaTime)
}

// updateTransition 跟随控制器阶段推进页面动画
func (s *LaunchScene) updateTransition(deltaTime float64) {
	tr := &s.transition
	current := s.phaseSystem.GetPhase()

	if tr.exiting {
		tr.exitTime += deltaTime
		if tr.exitTime < tr.exitLength {
			return
		}
		// 旧页面退出完成，新页面开始淡入
		tr.exiting = false
		tr.shown = current
		tr.enterTime = 0
		return
	}

	if tr.shown != current {
		tr.exiting = true
		tr.exitTime = 0
		tr.exitLength = exitDuration(tr.shown)
		return
	}
	tr.enterTime += deltaTime
}

// exitDuration 各阶段页面的退出时长
func exitDuration(phase components.LaunchPhase) float64 {
	switch phase {
	case components.LaunchPhaseLanding:
		return config.LandingExitDuration
	case components.LaunchPhaseCountdown:
		return config.CountdownExitDuration
	}
	return 0
}

// Close 销毁场景：停止计时器，之后不再触发任何回调
// 音频管理器由创建者持有，这里不释放
func (s *LaunchScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.phaseSystem.Close()
	log.Printf("[LaunchScene] Closed")
}

// Phase 返回控制器当前阶段
func (s *LaunchScene) Phase() components.LaunchPhase {
	return s.phaseSystem.GetPhase()
}

// PhaseSystem 返回阶段控制器
func (s *LaunchScene) PhaseSystem() *systems.LaunchPhaseSystem {
	return s.phaseSystem
}

func (s *LaunchScene) onButtonClick() {
	s.phaseSystem.Launch()
}

func (s *LaunchScene) onLaunch() {
	s.buttonSystem.SetEnabled(false)
	s.digitElapsed = 0
	s.audio.PlayLaunch()
}

func (s *LaunchScene) onTick(count int) {
	s.digitElapsed = 0
	s.audio.PlayCountdownBeep(count)
}

func (s *LaunchScene) onComplete() {
	s.audio.PlayWarp()
}

// Draw 绘制背景、当前阶段页面与 HUD
func (s *LaunchScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.drawVortex(screen)
	s.drawPhaseScreen(screen)
	s.drawHUD(screen)
	s.drawVignette(screen)
}

var (
	_ game.Scene  = (*LaunchScene)(nil)
	_ game.Closer = (*LaunchScene)(nil)
)
