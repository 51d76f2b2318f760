// Package app 提供发射流程应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数
// 和初始化嵌入资源，然后调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/embedded"
	"github.com/decker502/cyberfusion/pkg/game"
	"github.com/decker502/cyberfusion/pkg/scenes"
	"github.com/decker502/cyberfusion/pkg/systems"
	"github.com/decker502/cyberfusion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动
	Fullscreen bool
	// Mute 以静音启动，运行中按 M 切换
	Mute bool
	// Volume 音效音量 (0.0 ~ 1.0)，main 默认传入 config.DefaultVolume
	Volume float64
	// DryRun 只记录跳转地址，不打开浏览器
	DryRun bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.LaunchScene
	audioManager *game.AudioManager

	// quit 跳转完成后置位，下一次 Update 返回 ebiten.Termination
	quit bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 主题加载失败时使用内置主题（降级模式）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		log.Printf("[App] Warning: embedded resources not initialized, running with built-in theme (降级模式)")
	}

	theme, err := config.LoadThemeConfig(config.ThemeConfigPath)
	if err != nil {
		log.Printf("[App] Warning: %v, using built-in theme (降级模式)", err)
		theme = config.DefaultThemeConfig()
	}
	log.Printf("[Config] Theme loaded: %s", theme.Hero.Title)

	// 静音时同样创建上下文，之后才能通过 M 取消静音
	audioManager := game.NewAudioManager(newAudioContext(), cfg.Mute)
	audioManager.SetVolume(cfg.Volume)
	log.Printf("[App] AudioManager initialized (enabled=%v, volume=%.2f)", audioManager.Enabled(), audioManager.Volume())

	a := &App{
		sceneManager: game.NewSceneManager(),
		audioManager: audioManager,
	}

	browser := &utils.BrowserNavigator{DryRun: cfg.DryRun}
	navigator := systems.NavigatorFunc(func(url string) error {
		// 无论浏览器是否成功打开，流程都已结束
		a.quit = true
		return browser.Navigate(url)
	})

	scene, err := scenes.NewLaunchScene(theme, navigator, audioManager, nil)
	if err != nil {
		return nil, fmt.Errorf("发射场景初始化失败: %w", err)
	}
	a.scene = scene
	a.sceneManager.SwitchTo(scene)

	return a, nil
}

// newAudioContext 创建或复用音频上下文
// 同一进程只能有一个音频上下文，创建失败时返回 nil
func newAudioContext() (ctx *audio.Context) {
	if ctx = audio.CurrentContext(); ctx != nil {
		return ctx
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[App] Warning: audio unavailable: %v (降级模式)", r)
			ctx = nil
		}
	}()
	return audio.NewContext(game.SampleRate)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// M 切换静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleMute()
	}

	return a.step(1.0 / float64(ebiten.TPS()))
}

// toggleMute 切换静音
func (a *App) toggleMute() {
	a.audioManager.SetMuted(!a.audioManager.IsMuted())
}

// step 推进场景，跳转完成后关闭场景并结束主循环
func (a *App) step(deltaTime float64) error {
	if !a.quit {
		a.sceneManager.Update(deltaTime)
	}
	if a.quit {
		a.Close()
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close 关闭当前场景（停止计时器）并释放音频播放器
// 窗口关闭或主循环结束后调用，可重复调用
func (a *App) Close() {
	a.sceneManager.Close()
	a.audioManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
