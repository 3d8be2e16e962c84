package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig 环境变量覆盖项
//
// 优先级：命令行参数 > 环境变量 > 配置文件 > 默认值。
// 命令行参数的合并由 main 负责。
type EnvConfig struct {
	// Verbose 启用详细日志
	Verbose bool `env:"LOVEPARK_VERBOSE"`
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `env:"LOVEPARK_SEED"`
	// TuningPath 数值配置文件路径，为空则使用内置配置
	TuningPath string `env:"LOVEPARK_TUNING"`
	// Fullscreen 强制全屏启动（覆盖已保存的设置）
	Fullscreen bool `env:"LOVEPARK_FULLSCREEN"`
	// Mute 终端版关闭提示音
	Mute bool `env:"LOVEPARK_MUTE"`
}

// ParseEnv 从环境变量加载配置
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
