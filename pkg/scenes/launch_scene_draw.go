package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 落地页副标题排版
const (
	taglineFontSize   = 22.0
	taglineMaxWidth   = 720.0
	taglineLineHeight = 28.0
)

// screenFade 页面的透明度与缩放
type screenFade struct {
	alpha float64
	scale float64
}

// currentFade 根据转场状态计算当前页面的透明度与缩放
func (s *LaunchScene) currentFade() screenFade {
	tr := s.transition
	if tr.exiting {
		t := utils.EaseOutCubic(utils.Progress(tr.exitTime, tr.exitLength))
		fade := screenFade{alpha: 1 - t, scale: 1}
		if tr.shown == components.LaunchPhaseLanding {
			// 落地页放大退出
			fade.scale = utils.Lerp(1, 1.5, t)
		}
		return fade
	}

	t := utils.EaseOutCubic(utils.Progress(tr.enterTime, config.ScreenEnterDuration))
	return screenFade{alpha: t, scale: utils.Lerp(0.95, 1, t)}
}

// drawPhaseScreen 绘制当前显示的阶段页面
func (s *LaunchScene) drawPhaseScreen(screen *ebiten.Image) {
	fade := s.currentFade()
	if fade.alpha <= 0 {
		return
	}

	switch s.transition.shown {
	case components.LaunchPhaseLanding:
		s.drawLanding(screen, fade)
	case components.LaunchPhaseCountdown:
		s.drawCountdown(screen, fade)
	case components.LaunchPhaseComplete:
		s.drawComplete(screen, fade)
	}
}

// scaled 以屏幕中心为原点缩放坐标
func scaled(x, y, scale float64) (float64, float64) {
	cx, cy := float64(config.WindowWidth)/2, float64(config.WindowHeight)/2
	return cx + (x-cx)*scale, cy + (y-cy)*scale
}

// taglineLines 副标题换行结果
func (s *LaunchScene) taglineLines() []string {
	return utils.WrapText(s.theme.Hero.Tagline, s.fonts.MonoFace(taglineFontSize), taglineMaxWidth)
}

// drawLanding 落地页：徽章、标题、副标题、状态块、发射按钮
func (s *LaunchScene) drawLanding(screen *ebiten.Image, fade screenFade) {
	hero := s.theme.Hero
	magenta := config.MustColor(s.theme.Palette.Magenta)
	cyan := config.MustColor(s.theme.Palette.Cyan)
	cx := float64(config.WindowWidth) / 2

	// 标题背后的半透明大字
	x, y := scaled(cx, 200, fade.scale)
	utils.DrawText(screen, hero.Backdrop, s.fonts.HeadingFace(140), x, y, utils.TextStyle{
		Color: color.White, Alpha: fade.alpha * 0.04, Scale: fade.scale, Align: text.AlignCenter,
	})

	x, y = scaled(cx, 110, fade.scale)
	s.drawBadge(screen, hero.Badge, x, y, fade)

	// 标题：故障偏移随时间抖动
	glitch := 3 * math.Sin(s.elapsed*7) * math.Sin(s.elapsed*2.3)
	x, y = scaled(cx, 200, fade.scale)
	utils.DrawGlitchText(screen, hero.Title, s.fonts.HeadingFace(96), x, y, glitch, utils.TextStyle{
		Color: color.White, Alpha: fade.alpha, Scale: fade.scale, Align: text.AlignCenter,
	}, magenta, cyan)

	// 主题中的副标题可能较长，按宽度换行
	for i, line := range s.taglineLines() {
		x, y = scaled(cx, 270+float64(i)*taglineLineHeight, fade.scale)
		utils.DrawText(screen, line, s.fonts.MonoFace(taglineFontSize), x, y, utils.TextStyle{
			Color: cyan, Alpha: fade.alpha * 0.8, Scale: fade.scale, Align: text.AlignCenter,
		})
	}

	s.drawTiles(screen, hero.Tiles, fade)
	s.drawLaunchButton(screen, fade)

	// 底部提示闪烁
	blink := 0.5 + 0.5*utils.Pulse(s.elapsed, 2)
	x, y = scaled(cx, float64(config.WindowHeight)-90, fade.scale)
	utils.DrawText(screen, hero.ReadyText, s.fonts.MonoFace(14), x, y, utils.TextStyle{
		Color: color.White, Alpha: fade.alpha * blink * 0.6, Scale: fade.scale, Align: text.AlignCenter,
	})
}

// drawBadge 顶部徽章
func (s *LaunchScene) drawBadge(screen *ebiten.Image, label string, x, y float64, fade screenFade) {
	face := s.fonts.MonoFace(14)
	w, h := utils.MeasureText(label, face)
	w, h = (w+24)*fade.scale, (h+8)*fade.scale

	fill := config.MustColor(s.theme.Palette.Magenta)
	fill.A = uint8(255 * fade.alpha)
	vector.DrawFilledRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), premultiply(fill), false)
	utils.DrawText(screen, label, face, x, y, utils.TextStyle{
		Color: color.Black, Alpha: fade.alpha, Scale: fade.scale, Align: text.AlignCenter,
	})
}

// drawTiles 状态块，水平居中排列
func (s *LaunchScene) drawTiles(screen *ebiten.Image, tiles []config.HeroTile, fade screenFade) {
	if len(tiles) == 0 {
		return
	}

	const tileW, tileH, gap = 260.0, 64.0, 24.0
	cyan := config.MustColor(s.theme.Palette.Cyan)
	total := float64(len(tiles))*tileW + float64(len(tiles)-1)*gap
	left := float64(config.WindowWidth)/2 - total/2

	for i, tile := range tiles {
		x0, y0 := scaled(left+float64(i)*(tileW+gap), 320, fade.scale)
		w, h := tileW*fade.scale, tileH*fade.scale

		border := cyan
		border.A = uint8(80 * fade.alpha)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(w), float32(h), 1, premultiply(border), false)

		utils.DrawText(screen, tile.Label, s.fonts.MonoFace(12), x0+12*fade.scale, y0+18*fade.scale, utils.TextStyle{
			Color: color.White, Alpha: fade.alpha * 0.5, Scale: fade.scale,
		})
		utils.DrawText(screen, tile.Value, s.fonts.MonoFace(16), x0+12*fade.scale, y0+42*fade.scale, utils.TextStyle{
			Color: cyan, Alpha: fade.alpha, Scale: fade.scale,
		})
	}
}

// drawLaunchButton 发射按钮：方形主体 + 旋转外圈
func (s *LaunchScene) drawLaunchButton(screen *ebiten.Image, fade screenFade) {
	button, ok := ecs.GetComponent[*components.LaunchButtonComponent](s.entityManager, s.buttonSystem.GetEntity())
	if !ok {
		return
	}

	magenta := config.MustColor(s.theme.Palette.Magenta)
	cx, cy := scaled(button.CenterX, button.CenterY, fade.scale)
	size := button.Size * button.Scale * fade.scale
	half := size / 2

	// 外圈：四段弧线随 RingAngle 旋转
	ring := magenta
	ring.A = uint8(160 * fade.alpha)
	radius := half * 1.45
	for i := 0; i < 4; i++ {
		start := button.RingAngle + float64(i)*math.Pi/2
		drawArc(screen, cx, cy, radius, start, start+math.Pi/4, premultiply(ring))
	}

	fill := magenta
	if button.State == components.ButtonHovered || button.State == components.ButtonPressed {
		fill = config.MustColor(s.theme.Palette.Cyan)
	}
	fill.A = uint8(255 * fade.alpha)
	vector.DrawFilledRect(screen, float32(cx-half), float32(cy-half), float32(size), float32(size), premultiply(fill), true)

	utils.DrawText(screen, button.Label, s.fonts.HeadingFace(20), cx, cy, utils.TextStyle{
		Color: color.Black, Alpha: fade.alpha, Scale: fade.scale * button.Scale, Align: text.AlignCenter,
	})
}

// drawArc 以折线近似绘制圆弧
func drawArc(screen *ebiten.Image, cx, cy, r, from, to float64, clr color.Color) {
	const segments = 12
	step := (to - from) / segments
	for i := 0; i < segments; i++ {
		a0, a1 := from+float64(i)*step, from+float64(i+1)*step
		vector.StrokeLine(screen,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			2, clr, true)
	}
}

// drawCountdown 倒计时页：数字或 GO、副标题、进度条
func (s *LaunchScene) drawCountdown(screen *ebiten.Image, fade screenFade) {
	phase, ok := ecs.GetComponent[*components.LaunchPhaseComponent](s.entityManager, s.phaseSystem.GetPhaseEntity())
	if !ok {
		return
	}

	magenta := config.MustColor(s.theme.Palette.Magenta)
	cyan := config.MustColor(s.theme.Palette.Cyan)
	yellow := config.MustColor(s.theme.Palette.Yellow)
	cx, cy := float64(config.WindowWidth)/2, float64(config.WindowHeight)/2

	// 数字弹入
	pop := utils.EaseOutBack(utils.Progress(s.digitElapsed, config.DigitEnterDuration))
	digitAlpha := utils.Clamp01(utils.Progress(s.digitElapsed, config.DigitEnterDuration))
	digitColor := color.Color(color.White)
	if phase.GoShown {
		digitColor = yellow
	}
	glitch := 4 * phase.Intensity * math.Sin(s.elapsed*13)
	utils.DrawGlitchText(screen, s.phaseSystem.DisplayText(), s.fonts.HeadingFace(220), cx, cy-40, glitch, utils.TextStyle{
		Color: digitColor, Alpha: fade.alpha * digitAlpha, Scale: utils.Lerp(0.5, 1, pop), Align: text.AlignCenter,
	}, magenta, cyan)

	if caption := s.theme.Caption(phase.Count); caption != "" {
		utils.DrawText(screen, caption, s.fonts.MonoFace(18), cx, cy+100, utils.TextStyle{
			Color: cyan, Alpha: fade.alpha * 0.8, Align: text.AlignCenter,
		})
	}

	utils.DrawText(screen, s.theme.Countdown.Label, s.fonts.MonoFace(14), cx, cy+150, utils.TextStyle{
		Color: color.White, Alpha: fade.alpha * 0.5, Align: text.AlignCenter,
	})

	// 进度条：每次计数从左到右扫过一次
	const barW, barH = 320.0, 4.0
	track := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(25 * fade.alpha)}
	vector.DrawFilledRect(screen, float32(cx-barW/2), float32(cy+175), barW, barH, premultiply(track), false)

	progress := utils.Clamp01(phase.CountElapsed / config.CountdownTickInterval.Seconds())
	fill := magenta
	fill.A = uint8(255 * fade.alpha)
	vector.DrawFilledRect(screen, float32(cx-barW/2), float32(cy+175), float32(barW*progress), barH, premultiply(fill), false)
}

// drawComplete 完成页
func (s *LaunchScene) drawComplete(screen *ebiten.Image, fade screenFade) {
	phase, ok := ecs.GetComponent[*components.LaunchPhaseComponent](s.entityManager, s.phaseSystem.GetPhaseEntity())
	if !ok {
		return
	}

	complete := s.theme.Complete
	magenta := config.MustColor(s.theme.Palette.Magenta)
	cyan := config.MustColor(s.theme.Palette.Cyan)
	cx, cy := float64(config.WindowWidth)/2, float64(config.WindowHeight)/2

	glitch := 6 * math.Sin(s.elapsed*17)
	utils.DrawGlitchText(screen, complete.Title, s.fonts.HeadingFace(120), cx, cy-20, glitch, utils.TextStyle{
		Color: color.White, Alpha: fade.alpha, Scale: fade.scale, Align: text.AlignCenter,
	}, magenta, cyan)
	// 副标题在标题之后滑入
	slide := utils.EaseOutCirc(utils.Progress(phase.PhaseElapsed-config.CountdownExitDuration, config.ScreenEnterDuration))
	utils.DrawText(screen, complete.Subtitle, s.fonts.MonoFace(20), cx, cy+70+20*(1-slide), utils.TextStyle{
		Color: cyan, Alpha: fade.alpha * slide * 0.8, Scale: fade.scale, Align: text.AlignCenter,
	})
}

// premultiply 将非预乘颜色转换为 ebiten 使用的预乘颜色
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
