package systems

import (
	"fmt"
	"math/rand/v2"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/entities"
)

// HUDSystem 浮动 HUD 指标刷新
type HUDSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	interval      float64
	rng           *rand.Rand
}

// NewHUDSystem 创建 HUD 并立即生成一组指标
//
// 参数：
//   - em: 实体管理器
//   - interval: 刷新间隔（秒）
//   - rng: 随机源
func NewHUDSystem(em *ecs.EntityManager, interval float64, rng *rand.Rand) *HUDSystem {
	s := &HUDSystem{
		entityManager: em,
		interval:      interval,
		rng:           rng,
	}

	hud := &components.HUDMetricsComponent{}
	s.refresh(hud)
	s.entity = entities.NewHUDPanel(em, hud)
	return s
}

// Update 累计时间，到达间隔后刷新指标
func (s *HUDSystem) Update(deltaTime float64) {
	hud, ok := ecs.GetComponent[*components.HUDMetricsComponent](s.entityManager, s.entity)
	if !ok {
		return
	}

	hud.Age += deltaTime
	hud.SinceRefresh += deltaTime
	if s.interval <= 0 {
		return
	}
	for hud.SinceRefresh >= s.interval {
		hud.SinceRefresh -= s.interval
		s.refresh(hud)
	}
}

// GetEntity 返回 HUD 实体ID
func (s *HUDSystem) GetEntity() ecs.EntityID {
	return s.entity
}

func (s *HUDSystem) refresh(hud *components.HUDMetricsComponent) {
	hud.CPU = 45 + s.rng.Float64()*35
	hud.Memory = 60 + s.rng.Float64()*25
	hud.Network = 80 + s.rng.Float64()*18
	hud.Nodes = 120 + s.rng.IntN(80)
	hud.Latency = 12 + s.rng.IntN(8)
	hud.CoordN = fmt.Sprintf("%.4f", s.rng.Float64()*90)
	hud.CoordE = fmt.Sprintf("%.4f", s.rng.Float64()*180)
	hud.Refreshes++
}
