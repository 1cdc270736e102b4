package game

import (
	"context"
	"square_bet/internal/model"
	"strconv"
)

// setPurse Меняет кошелёк и обновляет экстремумы и рекорд
func (s *serv) setPurse(ctx context.Context, purse int) {
	if purse < 0 {
		panic("purse must not be negative")
	}
	s.purse = purse

	if purse > s.stats.HighestPurse {
		s.stats.HighestPurse = purse
	}
	if purse < s.stats.LowestPurse {
		s.stats.LowestPurse = purse
	}

	if purse > s.stats.AllTimeHighScore {
		s.stats.AllTimeHighScore = purse
		s.emit(model.EventHighScore, purse)
		// Рекорд в памяти уже обновлён, ошибку записи повторит checkout
		if err := s.scoreRepo.Set(ctx, s.cfg.HighScoreKey(), strconv.Itoa(purse)); err != nil {
			s.log.Error("failed to persist high score", "error", err, "value", purse)
		}
	}
}

// persistHighScore Записывает кошелёк как рекорд, если он больше сохранённого
func (s *serv) persistHighScore(ctx context.Context, purse int) (bool, error) {
	raised := false

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		stored, err := s.loadHighScore(txCtx)
		if err != nil {
			return err
		}
		if purse <= stored {
			return nil
		}
		if err := s.scoreRepo.Set(txCtx, s.cfg.HighScoreKey(), strconv.Itoa(purse)); err != nil {
			return err
		}
		raised = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return raised, nil
}
