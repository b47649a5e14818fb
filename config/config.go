package config

import (
	"github.com/spf13/viper"
)

// DefaultMaxNameAttempts 目标文件名冲突时的重试上限
// 正常情况下一次运行远达不到该值，仅作为防止死循环的保险
const DefaultMaxNameAttempts = 10000

type Config struct {
	Logging struct {
		Level string
		File  string
	}
	Placer struct {
		MaxNameAttempts int  `mapstructure:"max_name_attempts"`
		Sniff           bool // 对归入 others 的文件做内容类型探测（仅日志，不影响分类）
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.classfy")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/classfy")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("placer.max_name_attempts", DefaultMaxNameAttempts)
	viper.SetDefault("placer.sniff", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
