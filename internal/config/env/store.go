package env

import (
	"fmt"
	"square_bet/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type storeConfig struct {
	DriverName string `env:"SCORE_STORE" envDefault:"sqlite"`
	Path       string `env:"SQLITE_PATH" envDefault:"square_bet.db"`
}

// NewStoreConfig Хранилище рекорда: memory, sqlite или postgres
func NewStoreConfig() (config.StoreConfig, error) {
	var cfg storeConfig
	if err := cenv.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse store env: %w", err)
	}

	switch cfg.DriverName {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown score store %q", cfg.DriverName)
	}

	return &cfg, nil
}

func (c *storeConfig) Driver() string {
	return c.DriverName
}

func (c *storeConfig) SQLitePath() string {
	return c.Path
}
