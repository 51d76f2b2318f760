package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/embedded"
	"github.com/decker502/cyberfusion/pkg/systems"
	"github.com/decker502/cyberfusion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 着色器资源路径
const (
	BackgroundShaderPath = "data/shaders/background.kage"
	VignetteShaderPath   = "data/shaders/vignette.kage"
)

// 背景光团脉动周期（秒）
const backgroundPulsePeriod = 4.0

// shaderSet 场景使用的着色器
type shaderSet struct {
	background *ebiten.Shader
	vignette   *ebiten.Shader
	loaded     bool // 已尝试加载（无论成功与否）
}

// loadShader 从嵌入资源编译 Kage 着色器
func loadShader(path string) (*ebiten.Shader, error) {
	src, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader %s: %w", path, err)
	}
	return shader, nil
}

// ensureShaders 首次绘制时加载着色器，失败时进入降级模式
func (s *LaunchScene) ensureShaders() *shaderSet {
	if s.shaders != nil && s.shaders.loaded {
		return s.shaders
	}

	set := &shaderSet{loaded: true}
	var err error
	if set.background, err = loadShader(BackgroundShaderPath); err != nil {
		log.Printf("[LaunchScene] Warning: %v (降级模式: 纯色背景)", err)
	}
	if set.vignette, err = loadShader(VignetteShaderPath); err != nil {
		log.Printf("[LaunchScene] Warning: %v (降级模式: 无暗角)", err)
	}
	s.shaders = set
	return set
}

// drawBackground 绘制着色器背景，降级时绘制纯色 + 网格线
func (s *LaunchScene) drawBackground(screen *ebiten.Image) {
	bg := config.MustColor(s.theme.Palette.Background)
	screen.Fill(bg)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	intensity := s.phaseSystem.GetIntensity()

	if shader := s.ensureShaders().background; shader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.Uniforms = map[string]any{
			"Time":       float32(s.elapsed),
			"Resolution": []float32{float32(w), float32(h)},
			"Intensity":  float32(intensity),
			"Pulse":      float32(utils.Pulse(s.elapsed, backgroundPulsePeriod)),
			"Magenta":    colorVec3(config.MustColor(s.theme.Palette.Magenta)),
			"Cyan":       colorVec3(config.MustColor(s.theme.Palette.Cyan)),
		}
		screen.DrawRectShader(w, h, shader, op)
		return
	}

	cyan := config.MustColor(s.theme.Palette.Cyan)
	cyan.A = uint8(20 + 40*utils.Clamp01(intensity))
	for x := 0; x < w; x += 64 {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, cyan, false)
	}
	for y := 0; y < h; y += 64 {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, cyan, false)
	}
}

// particleImage 漩涡粒子使用的白色方块，颜色通过 ColorScale 指定
var particleImage = func() *ebiten.Image {
	img := ebiten.NewImage(2, 2)
	img.Fill(color.White)
	return img
}()

// drawVortex 以叠加混合绘制能量漩涡
func (s *LaunchScene) drawVortex(screen *ebiten.Image) {
	vortex, ok := ecs.GetComponent[*components.VortexComponent](s.entityManager, s.vortexSystem.GetEntity())
	if !ok || len(vortex.Particles) == 0 {
		return
	}

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	magenta := config.MustColor(s.theme.Palette.Magenta)
	cyan := config.MustColor(s.theme.Palette.Cyan)
	alpha := float32(s.theme.Vortex.Opacity * (1 + vortex.Intensity*0.5))

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	for _, p := range vortex.Particles {
		x, y, scale, visible := systems.ProjectVortexParticle(p, vortex.RotationZ, vortex.RotationX, w, h)
		if !visible || x < 0 || y < 0 || x > w || y > h {
			continue
		}

		// 粒子世界尺寸 0.05
		size := 0.05 * scale / 2
		op.GeoM.Reset()
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(x-size, y-size)
		op.ColorScale.Reset()
		if p.Magenta {
			op.ColorScale.ScaleWithColor(magenta)
		} else {
			op.ColorScale.ScaleWithColor(cyan)
		}
		op.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(particleImage, op)
	}
}

// drawVignette 边缘暗角
func (s *LaunchScene) drawVignette(screen *ebiten.Image) {
	shader := s.ensureShaders().vignette
	if shader == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Resolution": []float32{float32(w), float32(h)},
		"Strength":   float32(0.85),
	}
	screen.DrawRectShader(w, h, shader, op)
}

// colorVec3 将颜色转换为着色器 vec3 (0-1)
func colorVec3(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
