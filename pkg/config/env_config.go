package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultVolume 默认音效音量
const DefaultVolume = 1.0

// EnvConfig 从环境变量读取的启动选项
// 命令行参数以这些值为默认值，显式传入的参数优先
type EnvConfig struct {
	Verbose    bool    `env:"CYBERFUSION_VERBOSE"`
	Fullscreen bool    `env:"CYBERFUSION_FULLSCREEN"`
	Mute       bool    `env:"CYBERFUSION_MUTE"`
	DryRun     bool    `env:"CYBERFUSION_DRY_RUN"`
	Volume     float64 `env:"CYBERFUSION_VOLUME" envDefault:"1.0"`
}

// ParseEnv 将环境变量解析到 target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvConfig 读取启动选项
// 解析失败时返回默认值和错误，调用方可以继续使用默认值
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{Volume: DefaultVolume}, err
	}
	return cfg, nil
}
