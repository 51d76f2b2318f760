package config

import (
	"os"
	"strings"
	"testing"
)

// TestLoadEnvConfig 测试环境变量读取
func TestLoadEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    EnvConfig
		wantErr bool
	}{
		{
			name: "未设置时使用默认值",
			env:  map[string]string{},
			want: EnvConfig{Volume: DefaultVolume},
		},
		{
			name: "读取布尔值",
			env: map[string]string{
				"CYBERFUSION_VERBOSE": "true",
				"CYBERFUSION_DRY_RUN": "1",
			},
			want: EnvConfig{Verbose: true, DryRun: true, Volume: DefaultVolume},
		},
		{
			name: "读取音量",
			env:  map[string]string{"CYBERFUSION_VOLUME": "0.5"},
			want: EnvConfig{Volume: 0.5},
		},
		{
			name:    "无效音量返回错误",
			env:     map[string]string{"CYBERFUSION_VOLUME": "loud"},
			wantErr: true,
		},
		{
			name:    "无效布尔值返回错误",
			env:     map[string]string{"CYBERFUSION_MUTE": "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"CYBERFUSION_VERBOSE", "CYBERFUSION_FULLSCREEN", "CYBERFUSION_MUTE", "CYBERFUSION_DRY_RUN", "CYBERFUSION_VOLUME"} {
				// t.Setenv 负责在测试结束后恢复原值
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := LoadEnvConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望返回错误")
				}
				if !strings.Contains(err.Error(), "parse env:") {
					t.Errorf("错误应带 parse env 前缀, got %v", err)
				}
				if got.Volume != DefaultVolume {
					t.Errorf("解析失败时应返回默认音量, got %v", got.Volume)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadEnvConfig error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
