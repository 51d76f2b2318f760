package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 入场淡入时长（秒）
const hudFadeDuration = 0.8

// hudMeter HUD 指标条
type hudMeter struct {
	label string
	value float64 // 百分比 0-100
}

// drawHUD 四角浮动 HUD
func (s *LaunchScene) drawHUD(screen *ebiten.Image) {
	hud, ok := ecs.GetComponent[*components.HUDMetricsComponent](s.entityManager, s.hudSystem.GetEntity())
	if !ok {
		return
	}

	alpha := utils.EaseOutCubic(utils.Progress(hud.Age-s.theme.HUD.EntranceDelay, hudFadeDuration))
	if alpha <= 0 {
		return
	}

	cyan := config.MustColor(s.theme.Palette.Cyan)
	magenta := config.MustColor(s.theme.Palette.Magenta)
	face := s.fonts.MonoFace(12)
	w, h := float64(config.WindowWidth), float64(config.WindowHeight)

	// 左上：在线状态
	dot := magenta
	dot.A = uint8(255 * alpha * (0.4 + 0.6*utils.Pulse(s.elapsed, 1)))
	vector.DrawFilledCircle(screen, float32(HUDMargin+4), float32(HUDMargin+6), 4, premultiply(dot), true)
	utils.DrawText(screen, "SYS.ONLINE", face, HUDMargin+16, HUDMargin+6, utils.TextStyle{
		Color: cyan, Alpha: alpha,
	})
	utils.DrawText(screen, s.theme.HUD.Version, face, HUDMargin+16, HUDMargin+24, utils.TextStyle{
		Color: color.White, Alpha: alpha * 0.4,
	})

	// 右上：资源指标
	meters := []hudMeter{
		{"CPU", hud.CPU},
		{"MEM", hud.Memory},
		{"NET", hud.Network},
	}
	for i, m := range meters {
		s.drawMeter(screen, m, w-HUDMargin-200, HUDMargin+6+float64(i)*20, alpha)
	}

	// 左下：节点与延迟
	utils.DrawText(screen, fmt.Sprintf("NODES: %d", hud.Nodes), face, HUDMargin, h-HUDMargin-24, utils.TextStyle{
		Color: color.White, Alpha: alpha * 0.7,
	})
	utils.DrawText(screen, fmt.Sprintf("LATENCY: %dms", hud.Latency), face, HUDMargin, h-HUDMargin-6, utils.TextStyle{
		Color: color.White, Alpha: alpha * 0.7,
	})

	// 右下：坐标
	utils.DrawText(screen, "N "+hud.CoordN, face, w-HUDMargin, h-HUDMargin-24, utils.TextStyle{
		Color: cyan, Alpha: alpha * 0.7, Align: text.AlignEnd,
	})
	utils.DrawText(screen, "E "+hud.CoordE, face, w-HUDMargin, h-HUDMargin-6, utils.TextStyle{
		Color: cyan, Alpha: alpha * 0.7, Align: text.AlignEnd,
	})
}

// drawMeter 绘制带标签的指标条
func (s *LaunchScene) drawMeter(screen *ebiten.Image, m hudMeter, x, y, alpha float64) {
	const barW, barH = 120.0, 4.0
	face := s.fonts.MonoFace(11)

	utils.DrawText(screen, m.label, face, x, y, utils.TextStyle{
		Color: color.White, Alpha: alpha * 0.5,
	})

	track := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(20 * alpha)}
	vector.DrawFilledRect(screen, float32(x+36), float32(y-barH/2), barW, barH, premultiply(track), false)

	fill := config.MustColor(s.theme.Palette.Cyan)
	fill.A = uint8(220 * alpha)
	vector.DrawFilledRect(screen, float32(x+36), float32(y-barH/2), float32(barW*utils.Clamp01(m.value/100)), barH, premultiply(fill), false)

	utils.DrawText(screen, fmt.Sprintf("%.0f%%", m.value), face, x+200, y, utils.TextStyle{
		Color: color.White, Alpha: alpha * 0.6, Align: text.AlignEnd,
	})
}
