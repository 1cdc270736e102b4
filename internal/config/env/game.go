package env

import (
	"errors"
	"fmt"
	"os"
	"square_bet/internal/config"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultInitialPurse       = 100
	defaultGridSize           = 16
	defaultRevealLimit        = 8
	defaultPayoutMultiplier   = 2
	defaultCheckoutAfterGames = 4
	defaultResetDelay         = 1500 * time.Millisecond
	defaultHighScoreKey       = "highScore"

	maxInitialPurse     = 1_000_000_000
	maxGridSize         = 1024
	maxPayoutMultiplier = 1000
)

type gameFile struct {
	Game gameYAML `yaml:"game"`
}

type gameYAML struct {
	InitialPurse       *int    `yaml:"initial_purse"`
	GridSize           *int    `yaml:"grid_size"`
	RevealLimit        *int    `yaml:"reveal_limit"`
	PayoutMultiplier   *int    `yaml:"payout_multiplier"`
	CheckoutAfterGames *int    `yaml:"checkout_after_games"`
	ResetDelay         *string `yaml:"reset_delay"`
	HighScoreKey       *string `yaml:"high_score_key"`
}

type gameConfig struct {
	initialPurse       int
	gridSize           int
	revealLimit        int
	payoutMultiplier   int
	checkoutAfterGames int
	resetDelay         time.Duration
	highScoreKey       string
}

// DefaultGameConfig Правила по умолчанию: 100 монет, поле 4x4, 8 попыток, выплата x2
func DefaultGameConfig() config.GameConfig {
	return &gameConfig{
		initialPurse:       defaultInitialPurse,
		gridSize:           defaultGridSize,
		revealLimit:        defaultRevealLimit,
		payoutMultiplier:   defaultPayoutMultiplier,
		checkoutAfterGames: defaultCheckoutAfterGames,
		resetDelay:         defaultResetDelay,
		highScoreKey:       defaultHighScoreKey,
	}
}

// NewGameConfigFromYAML Читает правила из секции game YAML файла.
// Если файла нет, возвращаются значения по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGameConfig(), nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// ParseGameConfig Разбирает YAML и накладывает его поверх значений по умолчанию
func ParseGameConfig(data []byte) (config.GameConfig, error) {
	var f gameFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := DefaultGameConfig().(*gameConfig)
	y := f.Game

	if y.InitialPurse != nil {
		cfg.initialPurse = *y.InitialPurse
	}
	if y.GridSize != nil {
		cfg.gridSize = *y.GridSize
	}
	if y.RevealLimit != nil {
		cfg.revealLimit = *y.RevealLimit
	}
	if y.PayoutMultiplier != nil {
		cfg.payoutMultiplier = *y.PayoutMultiplier
	}
	if y.CheckoutAfterGames != nil {
		cfg.checkoutAfterGames = *y.CheckoutAfterGames
	}
	if y.ResetDelay != nil {
		d, err := time.ParseDuration(*y.ResetDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid reset delay: %w", err)
		}
		cfg.resetDelay = d
	}
	if y.HighScoreKey != nil {
		cfg.highScoreKey = *y.HighScoreKey
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *gameConfig) validate() error {
	if c.initialPurse <= 0 || c.initialPurse > maxInitialPurse {
		return fmt.Errorf("initial purse must be in [1, %d]", maxInitialPurse)
	}
	if c.gridSize < 2 || c.gridSize > maxGridSize {
		return fmt.Errorf("grid size must be in [2, %d]", maxGridSize)
	}
	// Лимит равный размеру поля гарантировал бы выигрыш
	if c.revealLimit < 1 || c.revealLimit >= c.gridSize {
		return fmt.Errorf("reveal limit must be in [1, %d)", c.gridSize)
	}
	if c.payoutMultiplier < 1 || c.payoutMultiplier > maxPayoutMultiplier {
		return fmt.Errorf("payout multiplier must be in [1, %d]", maxPayoutMultiplier)
	}
	if c.checkoutAfterGames < 0 {
		return errors.New("checkout after games must not be negative")
	}
	if c.resetDelay < 0 {
		return errors.New("reset delay must not be negative")
	}
	if c.highScoreKey == "" {
		return errors.New("high score key must not be empty")
	}
	return nil
}

func (c *gameConfig) InitialPurse() int {
	return c.initialPurse
}

func (c *gameConfig) GridSize() int {
	return c.gridSize
}

func (c *gameConfig) RevealLimit() int {
	return c.revealLimit
}

func (c *gameConfig) PayoutMultiplier() int {
	return c.payoutMultiplier
}

func (c *gameConfig) CheckoutAfterGames() int {
	return c.checkoutAfterGames
}

func (c *gameConfig) ResetDelay() time.Duration {
	return c.resetDelay
}

func (c *gameConfig) HighScoreKey() string {
	return c.highScoreKey
}
