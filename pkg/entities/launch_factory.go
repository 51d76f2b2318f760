package entities

import (
	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
)

// NewLaunchPhaseEntity 创建发射流程状态实体
// 初始阶段为 Landing，计时器未装填
func NewLaunchPhaseEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.LaunchPhaseComponent{
		Phase:         components.LaunchPhaseLanding,
		PreviousPhase: components.LaunchPhaseLanding,
		Count:         config.CountdownStart,
	})
	em.AddComponent(entity, &components.LaunchTimerComponent{})
	return entity
}

// NewLaunchButton 创建发射按钮实体
//
// 参数：
//   - em: 实体管理器
//   - centerX, centerY: 按钮中心（屏幕坐标）
//   - label: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewLaunchButton(em *ecs.EntityManager, centerX, centerY float64, label string, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.LaunchButtonComponent{
		CenterX: centerX,
		CenterY: centerY,
		Size:    config.LaunchButtonSize,
		Label:   label,
		State:   components.ButtonNormal,
		Enabled: true,
		Scale:   1,
		OnClick: onClick,
	})
	return entity
}

// NewVortex 创建能量漩涡实体
func NewVortex(em *ecs.EntityManager, particles []components.VortexParticle) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.VortexComponent{
		Particles: particles,
	})
	return entity
}

// NewHUDPanel 创建 HUD 指标实体
func NewHUDPanel(em *ecs.EntityManager, metrics *components.HUDMetricsComponent) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, metrics)
	return entity
}
