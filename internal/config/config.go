package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig Правила игры
type GameConfig interface {
	InitialPurse() int
	GridSize() int
	RevealLimit() int
	PayoutMultiplier() int
	CheckoutAfterGames() int
	ResetDelay() time.Duration
	HighScoreKey() string
}

type StoreConfig interface {
	Driver() string
	SQLitePath() string
}

type PGConfig interface {
	DSN() string
}

type LogConfig interface {
	Level() string
	Format() string
}
