package utils

import (
	"strings"
	"testing"
)

// TestLoadFontSet 测试内置字体加载
func TestLoadFontSet(t *testing.T) {
	fonts, err := LoadFontSet()
	if err != nil {
		t.Fatalf("LoadFontSet error: %v", err)
	}
	if fonts.Heading == nil || fonts.Mono == nil {
		t.Fatal("字体源不应为 nil")
	}

	face := fonts.MonoFace(16)
	if face.Size != 16 || face.Source != fonts.Mono {
		t.Errorf("MonoFace 参数错误: %+v", face)
	}
	if w, h := MeasureText("CYBER_FUSION", fonts.HeadingFace(32)); w <= 0 || h <= 0 {
		t.Errorf("MeasureText 应返回正尺寸, got %.1fx%.1f", w, h)
	}
	if w, h := MeasureText("", face); w != 0 || h != 0 {
		t.Errorf("空文本尺寸应为 0, got %.1fx%.1f", w, h)
	}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	fonts, err := LoadFontSet()
	if err != nil {
		t.Fatalf("LoadFontSet error: %v", err)
	}
	font := fonts.MonoFace(16)
	charWidth := measureTextWidth("M", font)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{
			name:      "短文本不换行",
			input:     "Ready for sync",
			maxWidth:  1000,
			expectMin: 1,
		},
		{
			name:      "长文本按单词换行",
			input:     "Transcending the Digital Horizon",
			maxWidth:  charWidth * 12.5,
			expectMin: 3,
		},
		{
			name:      "超长单词强制断行",
			input:     "NEURAL_SYNC_SUCCESSFUL",
			maxWidth:  charWidth * 8.5,
			expectMin: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("期望至少 %d 行, got %d: %q", tt.expectMin, len(lines), lines)
			}
			for _, line := range lines {
				if w := measureTextWidth(line, font); w > tt.maxWidth+0.5 {
					t.Errorf("行 %q 宽度 %.1f 超过 %.1f", line, w, tt.maxWidth)
				}
			}
			joined := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
			if joined != strings.ReplaceAll(tt.input, " ", "") {
				t.Errorf("换行后内容丢失: %q", lines)
			}
		})
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	if got := WrapText("", nil, 100); len(got) != 1 || got[0] != "" {
		t.Errorf("空文本: got %q", got)
	}
	if got := WrapText("abc", nil, 100); len(got) != 1 || got[0] != "abc" {
		t.Errorf("nil 字体: got %q", got)
	}
}
