// Package main provides a headless verification tool for the launch countdown timeline.
//
// Usage:
//
//	go run cmd/verify_countdown/main.go [flags]
//
// Flags:
//
//	--tps <n>            Simulated ticks per second (default: 60)
//	--launch-at <sec>    Simulated time of the launch click (default: 0.5)
//	--duration <sec>     Total simulated time (default: 10)
//	--verbose            Enable verbose logging
//
// Purpose:
//   - Print every phase change, tick and navigation with its frame and time
//   - Check that frame-based stepping hits 2.0s / 4.0s / 6.0s / 7.2s without drifting early
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/systems"
)

var (
	tpsFlag      = flag.Int("tps", 60, "Simulated ticks per second")
	launchAtFlag = flag.Float64("launch-at", 0.5, "Simulated time of the launch click in seconds")
	durationFlag = flag.Float64("duration", 10, "Total simulated time in seconds")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

// timeline 记录模拟时间并输出事件
type timeline struct {
	out      io.Writer
	frame    int
	now      time.Duration
	launched time.Duration
}

func (tl *timeline) event(format string, args ...any) {
	since := tl.now - tl.launched
	fmt.Fprintf(tl.out, "frame %5d  t=%8.3fs  +%7.3fs  %s\n",
		tl.frame, tl.now.Seconds(), since.Seconds(), fmt.Sprintf(format, args...))
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	if *tpsFlag <= 0 {
		fmt.Fprintln(os.Stderr, "--tps must be positive")
		os.Exit(2)
	}

	tl := &timeline{out: os.Stdout}
	navigations := 0

	em := ecs.NewEntityManager()
	phase := systems.NewLaunchPhaseSystem(em, systems.NavigatorFunc(func(url string) error {
		navigations++
		tl.event("navigate -> %s", url)
		return nil
	}))
	// 打印阶段切换（上一阶段 -> 当前阶段）
	phaseChanged := func() {
		state, ok := ecs.GetComponent[*components.LaunchPhaseComponent](em, phase.GetPhaseEntity())
		if !ok {
			return
		}
		tl.event("phase %s -> %s count=%d", state.PreviousPhase, state.Phase, state.Count)
	}
	phase.SetOnLaunch(phaseChanged)
	phase.SetOnTick(func(count int) {
		tl.event("tick display=%s intensity=%.1f", systems.CountdownDisplayText(count), phase.GetIntensity())
	})
	phase.SetOnComplete(phaseChanged)

	deltaTime := 1.0 / float64(*tpsFlag)
	launchFrame := int(*launchAtFlag * float64(*tpsFlag))
	totalFrames := int(*durationFlag * float64(*tpsFlag))

	fmt.Printf("Simulating %d frames at %d TPS, launch at frame %d\n", totalFrames, *tpsFlag, launchFrame)
	for tl.frame = 0; tl.frame < totalFrames; tl.frame++ {
		if tl.frame == launchFrame {
			tl.launched = tl.now
			phase.Launch()
		}
		tl.now += time.Duration(deltaTime * float64(time.Second))
		phase.Update(deltaTime)
	}

	fmt.Printf("Final: phase=%s count=%d navigated=%v navigations=%d\n",
		phase.GetPhase(), phase.GetCount(), phase.IsNavigated(), navigations)
	if navigations != 1 && *durationFlag-*launchAtFlag >= 7.3 {
		os.Exit(1)
	}
}
