package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
)

func testVortexTheme() config.VortexTheme {
	return config.DefaultThemeConfig().Vortex
}

// TestGenerateVortexParticles 测试粒子分布
func TestGenerateVortexParticles(t *testing.T) {
	theme := testVortexTheme()
	particles := GenerateVortexParticles(theme, rand.New(rand.NewPCG(1, 2)))

	if len(particles) != theme.ParticleCount {
		t.Fatalf("粒子数量: got %d, want %d", len(particles), theme.ParticleCount)
	}

	magenta := 0
	for i, p := range particles {
		r := math.Hypot(p.X, p.Y)
		if r < theme.MinRadius-1e-9 || r > theme.MaxRadius+1e-9 {
			t.Fatalf("粒子 %d 半径越界: %v", i, r)
		}
		if math.Abs(p.Z) > theme.Depth/2 {
			t.Fatalf("粒子 %d 深度越界: %v", i, p.Z)
		}
		if p.Magenta {
			magenta++
		}
	}

	// 5000 个粒子中品红色应约占一半
	ratio := float64(magenta) / float64(len(particles))
	if ratio < 0.4 || ratio > 0.6 {
		t.Errorf("品红比例异常: %.2f", ratio)
	}
}

// TestGenerateVortexParticlesEmpty 测试粒子数为 0
func TestGenerateVortexParticlesEmpty(t *testing.T) {
	theme := testVortexTheme()
	theme.ParticleCount = 0
	if got := GenerateVortexParticles(theme, rand.New(rand.NewPCG(1, 2))); len(got) != 0 {
		t.Errorf("got %d particles, want 0", len(got))
	}
}

// TestVortexSystem_Update 测试旋转推进
func TestVortexSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()
	theme := testVortexTheme()
	s := NewVortexSystem(em, theme, rand.New(rand.NewPCG(3, 4)))

	// 60 帧 = 1 秒
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60.0)
	}

	vortex, ok := ecs.GetComponent[*components.VortexComponent](em, s.GetEntity())
	if !ok {
		t.Fatal("VortexComponent not found")
	}

	wantZ := theme.SpinPerFrame * 60
	if math.Abs(vortex.RotationZ-wantZ) > 1e-9 {
		t.Errorf("RotationZ: got %v, want %v", vortex.RotationZ, wantZ)
	}
	wantX := math.Sin(1.0*theme.TiltSpeed) * theme.TiltAmount
	if math.Abs(vortex.RotationX-wantX) > 1e-9 {
		t.Errorf("RotationX: got %v, want %v", vortex.RotationX, wantX)
	}

	s.SetIntensity(0.9)
	if vortex.Intensity != 0.9 {
		t.Errorf("Intensity: got %v, want 0.9", vortex.Intensity)
	}
}

// TestProjectVortexParticle 测试透视投影
func TestProjectVortexParticle(t *testing.T) {
	const w, h = 1280.0, 720.0

	t.Run("原点投影到屏幕中心", func(t *testing.T) {
		x, y, scale, ok := ProjectVortexParticle(components.VortexParticle{}, 0, 0, w, h)
		if !ok {
			t.Fatal("原点应可见")
		}
		if x != w/2 || y != h/2 {
			t.Errorf("got (%v, %v), want (%v, %v)", x, y, w/2, h/2)
		}
		if scale <= 0 {
			t.Errorf("scale should be positive, got %v", scale)
		}
	})

	t.Run("Y 轴向上", func(t *testing.T) {
		_, y, _, _ := ProjectVortexParticle(components.VortexParticle{Y: 2}, 0, 0, w, h)
		if y >= h/2 {
			t.Errorf("正 Y 应在屏幕上半部分, got y=%v", y)
		}
	})

	t.Run("绕 Z 轴旋转 90°", func(t *testing.T) {
		x, y, _, _ := ProjectVortexParticle(components.VortexParticle{X: 2}, math.Pi/2, 0, w, h)
		if math.Abs(x-w/2) > 1e-6 || y >= h/2 {
			t.Errorf("(2,0) 旋转 90° 后应在正上方, got (%v, %v)", x, y)
		}
	})

	t.Run("相机后方不可见", func(t *testing.T) {
		if _, _, _, ok := ProjectVortexParticle(components.VortexParticle{Z: 12}, 0, 0, w, h); ok {
			t.Error("z=12 在相机后方，应不可见")
		}
	})

	t.Run("近大远小", func(t *testing.T) {
		_, _, near, _ := ProjectVortexParticle(components.VortexParticle{Z: 4}, 0, 0, w, h)
		_, _, far, _ := ProjectVortexParticle(components.VortexParticle{Z: -4}, 0, 0, w, h)
		if near <= far {
			t.Errorf("near scale %v should exceed far scale %v", near, far)
		}
	})
}
