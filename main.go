// Package main 是 CYBER_FUSION 发射流程的桌面入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose     Enable verbose logging
//	--fullscreen  Start in fullscreen mode
//	--mute        Disable sound effects
//	--dry-run     Log the redirect URL instead of opening a browser
//	--volume      Sound effect volume, 0.0 to 1.0 (default 1.0)
//
// Each flag defaults to the matching environment variable
// (CYBERFUSION_VERBOSE, CYBERFUSION_FULLSCREEN, CYBERFUSION_MUTE,
// CYBERFUSION_DRY_RUN, CYBERFUSION_VOLUME).
//
// Controls:
//
//	Click / Enter / Space - Initiate the launch sequence
//	F11                   - Toggle fullscreen
//	M                     - Toggle mute
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/decker502/cyberfusion/pkg/app"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 环境变量提供默认值，命令行参数优先
	envCfg, envErr := config.LoadEnvConfig()
	if envErr != nil {
		log.Printf("[Main] Warning: %v, ignoring environment", envErr)
	}

	verboseFlag := flag.Bool("verbose", envCfg.Verbose, "Enable verbose logging")
	fullscreenFlag := flag.Bool("fullscreen", envCfg.Fullscreen, "Start in fullscreen mode")
	muteFlag := flag.Bool("mute", envCfg.Mute, "Start with sound effects muted (toggle with M)")
	dryRunFlag := flag.Bool("dry-run", envCfg.DryRun, "Log the redirect URL instead of opening a browser")
	volumeFlag := flag.Float64("volume", envCfg.Volume, "Sound effect volume, 0.0 to 1.0")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verboseFlag,
		Fullscreen: *fullscreenFlag,
		Mute:       *muteFlag,
		DryRun:     *dryRunFlag,
		Volume:     *volumeFlag,
	}
	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	// 跳转完成后 Update 返回 ebiten.Termination，RunGame 返回 nil
	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatalf("运行失败: %v", err)
	}
}
