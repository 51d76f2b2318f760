package entities

import (
	"testing"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
)

// TestNewLaunchPhaseEntity 测试阶段实体初始状态
func TestNewLaunchPhaseEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewLaunchPhaseEntity(em)

	phase, ok := ecs.GetComponent[*components.LaunchPhaseComponent](em, id)
	if !ok {
		t.Fatal("缺少 LaunchPhaseComponent")
	}
	if phase.Phase != components.LaunchPhaseLanding || phase.Count != config.CountdownStart {
		t.Errorf("初始状态错误: %+v", phase)
	}

	timer, ok := ecs.GetComponent[*components.LaunchTimerComponent](em, id)
	if !ok {
		t.Fatal("缺少 LaunchTimerComponent")
	}
	if timer.Active {
		t.Error("计时器初始不应装填")
	}
}

// TestNewLaunchButton 测试按钮实体
func TestNewLaunchButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id := NewLaunchButton(em, 640, 500, "INITIATE", func() { clicked = true })

	button, ok := ecs.GetComponent[*components.LaunchButtonComponent](em, id)
	if !ok {
		t.Fatal("缺少 LaunchButtonComponent")
	}
	if !button.Enabled || button.Scale != 1 || button.Size != config.LaunchButtonSize {
		t.Errorf("按钮初始状态错误: %+v", button)
	}
	button.OnClick()
	if !clicked {
		t.Error("OnClick 未保存")
	}
}

// TestNewVortexAndHUD 测试装饰实体
func TestNewVortexAndHUD(t *testing.T) {
	em := ecs.NewEntityManager()
	vortex := NewVortex(em, make([]components.VortexParticle, 3))
	hud := NewHUDPanel(em, &components.HUDMetricsComponent{Nodes: 150})

	if v, ok := ecs.GetComponent[*components.VortexComponent](em, vortex); !ok || len(v.Particles) != 3 {
		t.Error("漩涡实体粒子数错误")
	}
	if h, ok := ecs.GetComponent[*components.HUDMetricsComponent](em, hud); !ok || h.Nodes != 150 {
		t.Error("HUD 实体指标错误")
	}
	if em.Count() != 2 {
		t.Errorf("实体数: got %d, want 2", em.Count())
	}
}
