package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/cyberfusion/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ThemeConfigPath 嵌入主题配置的路径
const ThemeConfigPath = "data/theme.yaml"

// HeroTile 落地页状态块（标签 + 数值）
type HeroTile struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// HeroTheme 落地页文案
type HeroTheme struct {
	Badge     string     `yaml:"badge"`     // 顶部倾斜徽章
	Title     string     `yaml:"title"`     // 主标题
	Tagline   string     `yaml:"tagline"`   // 副标题
	Backdrop  string     `yaml:"backdrop"`  // 标题背后的半透明大字
	ReadyText string     `yaml:"readyText"` // 底部提示
	Tiles     []HeroTile `yaml:"tiles"`     // 状态块
}

// ButtonTheme 发射按钮文案
type ButtonTheme struct {
	Label string `yaml:"label"`
}

// CountdownTheme 倒计时页文案
type CountdownTheme struct {
	Label    string         `yaml:"label"`
	Captions map[int]string `yaml:"captions"` // 倒计时值 -> 副标题
}

// CompleteTheme 完成页文案
type CompleteTheme struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// PaletteTheme 配色（十六进制字符串，如 "#ff0055"）
type PaletteTheme struct {
	Magenta    string `yaml:"magenta"`
	Cyan       string `yaml:"cyan"`
	Yellow     string `yaml:"yellow"`
	Background string `yaml:"background"`
}

// VortexTheme 能量漩涡粒子参数
type VortexTheme struct {
	ParticleCount int     `yaml:"particleCount"`
	MinRadius     float64 `yaml:"minRadius"`
	MaxRadius     float64 `yaml:"maxRadius"`
	Depth         float64 `yaml:"depth"`
	SpinPerFrame  float64 `yaml:"spinPerFrame"` // 每帧绕 Z 轴旋转的弧度
	TiltSpeed     float64 `yaml:"tiltSpeed"`    // X 轴摆动频率
	TiltAmount    float64 `yaml:"tiltAmount"`   // X 轴摆动幅度（弧度）
	Opacity       float64 `yaml:"opacity"`
}

// HUDTheme 浮动 HUD 参数
type HUDTheme struct {
	Version         string  `yaml:"version"`
	RefreshInterval float64 `yaml:"refreshInterval"` // 指标刷新间隔（秒）
	EntranceDelay   float64 `yaml:"entranceDelay"`   // 入场动画延迟（秒）
}

// ThemeConfig 发射页主题配置
// 仅包含装饰性内容，不影响阶段状态机
type ThemeConfig struct {
	Hero      HeroTheme      `yaml:"hero"`
	Button    ButtonTheme    `yaml:"button"`
	Countdown CountdownTheme `yaml:"countdown"`
	Complete  CompleteTheme  `yaml:"complete"`
	Palette   PaletteTheme   `yaml:"palette"`
	Vortex    VortexTheme    `yaml:"vortex"`
	HUD       HUDTheme       `yaml:"hud"`
}

// DefaultThemeConfig 返回内置主题
// 嵌入配置缺失或解析失败时使用（降级模式）
func DefaultThemeConfig() *ThemeConfig {
	return &ThemeConfig{
		Hero: HeroTheme{
			Badge:     "PROTOCOL // ALPHA_01",
			Title:     "CYBER_FUSION",
			Tagline:   "Transcending the Digital Horizon",
			Backdrop:  "SYSTEM_BREACH",
			ReadyText: "Ready for sync",
			Tiles: []HeroTile{
				{Label: "Status", Value: "NEURAL_SYNC_SUCCESSFUL"},
				{Label: "Latency", Value: "0.002MS_ACTIVE"},
			},
		},
		Button: ButtonTheme{Label: "INITIATE"},
		Countdown: CountdownTheme{
			Label: "Overclocking Systems",
			Captions: map[int]string{
				3: "PHASE_LOAD",
				2: "SYNC_ACTIVE",
				1: "CORE_BREACH",
			},
		},
		Complete: CompleteTheme{
			Title:    "BREACHED",
			Subtitle: "Entering the Neural Web",
		},
		Palette: PaletteTheme{
			Magenta:    "#ff0055",
			Cyan:       "#00f2ff",
			Yellow:     "#ffcc00",
			Background: "#000000",
		},
		Vortex: VortexTheme{
			ParticleCount: 5000,
			MinRadius:     2,
			MaxRadius:     10,
			Depth:         10,
			SpinPerFrame:  0.005,
			TiltSpeed:     0.2,
			TiltAmount:    0.2,
			Opacity:       0.6,
		},
		HUD: HUDTheme{
			Version:         "v2.4.1-prod",
			RefreshInterval: 1.5,
			EntranceDelay:   1.0,
		},
	}
}

// LoadThemeConfig 从嵌入资源加载主题配置
//
// 参数：
//   - path: 资源路径，必须以 "data/" 开头
//
// 返回：
//   - *ThemeConfig: 解析后的配置
//   - error: 读取、解析或校验失败
func LoadThemeConfig(path string) (*ThemeConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	cfg, err := ParseThemeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return cfg, nil
}

// ParseThemeConfig 解析 YAML 主题
// 未出现在 YAML 中的字段保留内置默认值
func ParseThemeConfig(data []byte) (*ThemeConfig, error) {
	cfg := DefaultThemeConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme YAML: %w", err)
	}

	if err := validateThemeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateThemeConfig 校验主题配置
func validateThemeConfig(cfg *ThemeConfig) error {
	if cfg.Vortex.ParticleCount < 0 || cfg.Vortex.ParticleCount > 20000 {
		return fmt.Errorf("vortex.particleCount must be in [0, 20000], got %d", cfg.Vortex.ParticleCount)
	}
	if cfg.Vortex.MinRadius < 0 || cfg.Vortex.MaxRadius < cfg.Vortex.MinRadius {
		return fmt.Errorf("vortex radius range invalid: [%v, %v]", cfg.Vortex.MinRadius, cfg.Vortex.MaxRadius)
	}
	if cfg.HUD.RefreshInterval <= 0 {
		return fmt.Errorf("hud.refreshInterval must be positive, got %v", cfg.HUD.RefreshInterval)
	}

	for name, hex := range map[string]string{
		"magenta":    cfg.Palette.Magenta,
		"cyan":       cfg.Palette.Cyan,
		"yellow":     cfg.Palette.Yellow,
		"background": cfg.Palette.Background,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("palette.%s: %w", name, err)
		}
	}
	return nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor 解析颜色，失败时返回白色
// 仅用于已通过校验的配置
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// Caption 返回倒计时值对应的副标题，0 或未配置时返回空字符串
func (c *ThemeConfig) Caption(count int) string {
	return c.Countdown.Captions[count]
}
