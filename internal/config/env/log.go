package env

import (
	"fmt"
	"square_bet/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

type logConfig struct {
	LevelName  string `env:"LOG_LEVEL" envDefault:"info"`
	FormatName string `env:"LOG_FORMAT" envDefault:"text"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := cenv.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse log env: %w", err)
	}
	return &cfg, nil
}

func (c *logConfig) Level() string {
	return c.LevelName
}

func (c *logConfig) Format() string {
	return c.FormatName
}
