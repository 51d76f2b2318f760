package components

// VortexParticle 能量漩涡中的单个粒子（模型空间坐标）
type VortexParticle struct {
	X, Y, Z float64
	// Magenta 为 true 时使用品红色，否则使用青色
	Magenta bool
}

// VortexComponent 背景能量漩涡
type VortexComponent struct {
	Particles []VortexParticle

	// RotationZ 绕 Z 轴累计旋转（弧度），每帧递增
	RotationZ float64
	// RotationX 绕 X 轴摆动（弧度），随时间正弦变化
	RotationX float64
	// Elapsed 累计运行时间（秒）
	Elapsed float64

	// Intensity 当前背景强度，从 LaunchPhaseComponent 同步
	Intensity float64
}
