package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

// FontSet 界面使用的字体源
// Heading 用于标题和倒计时数字，Mono 用于 HUD 和说明文字
type FontSet struct {
	Heading *text.GoTextFaceSource
	Mono    *text.GoTextFaceSource
}

// LoadFontSet 从内置 Go 字体加载字体源
func LoadFontSet() (*FontSet, error) {
	heading, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load heading font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load mono font: %w", err)
	}
	return &FontSet{Heading: heading, Mono: mono}, nil
}

// HeadingFace 返回指定字号的标题字体
func (f *FontSet) HeadingFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Heading, Size: size}
}

// MonoFace 返回指定字号的等宽字体
func (f *FontSet) MonoFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Mono, Size: size}
}

// TextStyle 文字绘制参数
type TextStyle struct {
	Color color.Color
	// Alpha 额外的整体透明度（0-1）
	Alpha float64
	// Scale 以锚点为中心缩放
	Scale float64
	// LineSpacing 多行文本的行距，0 时使用字号的 1.2 倍
	LineSpacing float64
	Align       text.Align
}

// DrawText 在 (x, y) 绘制文字，y 为文字垂直中心
// Align 决定 x 是左端、中心还是右端
func DrawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, style TextStyle) {
	if screen == nil || face == nil || s == "" || style.Alpha <= 0 {
		return
	}

	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = style.Align
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = style.LineSpacing
	if op.LineSpacing <= 0 {
		op.LineSpacing = face.Size * 1.2
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)

	c := style.Color
	if c == nil {
		c = color.White
	}
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(Clamp01(style.Alpha)))

	text.Draw(screen, s, face, op)
}

// DrawGlitchText 绘制带色差偏移的故障风格文字
// 先画左右错位的品红、青色副本，再画主体
func DrawGlitchText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y, offset float64, style TextStyle, left, right color.Color) {
	if offset != 0 {
		ghost := style
		ghost.Alpha = style.Alpha * 0.7
		ghost.Color = left
		DrawText(screen, s, face, x-offset, y, ghost)
		ghost.Color = right
		DrawText(screen, s, face, x+offset, y, ghost)
	}
	DrawText(screen, s, face, x, y, style)
}

// MeasureText 测量文本宽高
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return text.Measure(s, face, face.Size*1.2)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 优先在空格处断行；单个单词超宽时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词本身超宽，按字符拆开
		for measureTextWidth(word, font) > maxWidth {
			cut := fitPrefix(word, font, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// fitPrefix 返回不超过 maxWidth 的最长前缀字节长度，至少包含一个字符
func fitPrefix(word string, font *text.GoTextFace, maxWidth float64) int {
	cut := 0
	for cut < len(word) {
		_, size := utf8.DecodeRuneInString(word[cut:])
		if cut > 0 && measureTextWidth(word[:cut+size], font) > maxWidth {
			break
		}
		cut += size
	}
	return cut
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
