package components

// HUDMetricsComponent 浮动 HUD 的伪造指标
// 数值只用于装饰，按固定间隔随机刷新
type HUDMetricsComponent struct {
	CPU     float64 // 45 ~ 80
	Memory  float64 // 60 ~ 85
	Network float64 // 80 ~ 98
	Nodes   int     // 120 ~ 199
	Latency int     // 12 ~ 19 ms
	CoordN  string
	CoordE  string

	// SinceRefresh 距上次刷新经过的时间（秒）
	SinceRefresh float64
	// Age HUD 创建后经过的时间（秒），用于入场动画
	Age float64
	// Refreshes 累计刷新次数
	Refreshes int
}
