package systems

import (
	"math"
	"math/rand/v2"

	"github.com/decker502/cyberfusion/pkg/components"
	"github.com/decker502/cyberfusion/pkg/config"
	"github.com/decker502/cyberfusion/pkg/ecs"
	"github.com/decker502/cyberfusion/pkg/entities"
)

// 透视相机参数：位于 z=10，朝 -z 方向，垂直视角 60°
const (
	vortexCameraZ   = 10.0
	vortexFOV       = 60.0 * math.Pi / 180.0
	vortexNearPlane = 0.1
	// 参数按 60 TPS 定义"每帧"旋转量
	vortexReferenceTPS = 60.0
)

// VortexSystem 背景能量漩涡
// 纯装饰系统：只读取阶段强度，不向阶段控制器写入任何内容
type VortexSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	theme         config.VortexTheme
}

// NewVortexSystem 创建漩涡并生成粒子
//
// 参数：
//   - em: 实体管理器
//   - theme: 粒子参数
//   - rng: 随机源，测试中可传入固定种子
func NewVortexSystem(em *ecs.EntityManager, theme config.VortexTheme, rng *rand.Rand) *VortexSystem {
	s := &VortexSystem{
		entityManager: em,
		theme:         theme,
	}

	s.entity = entities.NewVortex(em, GenerateVortexParticles(theme, rng))
	return s
}

// GenerateVortexParticles 生成环形分布的粒子
// 半径位于 [MinRadius, MaxRadius)，z 位于 [-Depth/2, Depth/2)，品红与青色各约一半
func GenerateVortexParticles(theme config.VortexTheme, rng *rand.Rand) []components.VortexParticle {
	particles := make([]components.VortexParticle, theme.ParticleCount)
	for i := range particles {
		theta := rng.Float64() * math.Pi * 2
		r := theme.MinRadius + rng.Float64()*(theme.MaxRadius-theme.MinRadius)
		particles[i] = components.VortexParticle{
			X:       r * math.Cos(theta),
			Y:       r * math.Sin(theta),
			Z:       (rng.Float64() - 0.5) * theme.Depth,
			Magenta: rng.Float64() > 0.5,
		}
	}
	return particles
}

// Update 推进旋转
func (s *VortexSystem) Update(deltaTime float64) {
	vortex, ok := ecs.GetComponent[*components.VortexComponent](s.entityManager, s.entity)
	if !ok {
		return
	}

	vortex.Elapsed += deltaTime
	vortex.RotationZ += s.theme.SpinPerFrame * deltaTime * vortexReferenceTPS
	vortex.RotationX = math.Sin(vortex.Elapsed*s.theme.TiltSpeed) * s.theme.TiltAmount
}

// SetIntensity 同步背景强度
func (s *VortexSystem) SetIntensity(intensity float64) {
	if vortex, ok := ecs.GetComponent[*components.VortexComponent](s.entityManager, s.entity); ok {
		vortex.Intensity = intensity
	}
}

// GetEntity 返回漩涡实体ID
func (s *VortexSystem) GetEntity() ecs.EntityID {
	return s.entity
}

// ProjectVortexParticle 将粒子投影到屏幕坐标
//
// 返回：
//   - x, y: 屏幕坐标
//   - scale: 透视缩放（越近越大），用于粒子尺寸
//   - visible: 粒子是否在相机前方
func ProjectVortexParticle(p components.VortexParticle, rotZ, rotX, screenW, screenH float64) (x, y, scale float64, visible bool) {
	// 绕 Z 轴旋转
	cz, sz := math.Cos(rotZ), math.Sin(rotZ)
	px := p.X*cz - p.Y*sz
	py := p.X*sz + p.Y*cz

	// 绕 X 轴旋转
	cx, sx := math.Cos(rotX), math.Sin(rotX)
	ry := py*cx - p.Z*sx
	rz := py*sx + p.Z*cx

	depth := vortexCameraZ - rz
	if depth <= vortexNearPlane {
		return 0, 0, 0, false
	}

	focal := (screenH / 2) / math.Tan(vortexFOV/2)
	scale = focal / depth
	x = screenW/2 + px*scale
	y = screenH/2 - ry*scale
	return x, y, scale, true
}
