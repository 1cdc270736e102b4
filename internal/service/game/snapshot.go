package game

import (
	"slices"
	"square_bet/internal/model"
	"time"
)

// Advance Применяет отложенный сброс поля, если его время наступило.
// Возвращает true, если состояние изменилось
func (s *serv) Advance(now time.Time) bool {
	if s.pending == nil || now.Before(s.pending.Due) {
		return false
	}

	if s.round != nil && s.round.ID == s.pending.RoundID {
		s.round.Revealed = s.round.Revealed[:0]
		s.round.BoardCleared = true
	}
	s.pending = nil
	return true
}

func (s *serv) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Phase:       s.phase,
		Purse:       s.purse,
		Bet:         s.bet,
		MaxBet:      s.maxBet(),
		Stats:       s.stats,
		Modal:       s.modal,
		CanStart:    s.canStart(),
		CanCheckout: s.canCheckout(),
	}

	if s.round != nil {
		snap.RoundID = s.round.ID
		snap.RoundBet = s.round.Bet
		snap.Revealed = slices.Clone(s.round.Revealed)
		snap.Result = s.round.Result
		snap.BoardCleared = s.round.BoardCleared

		// Выигрышная клетка видна только открытой
		if slices.Contains(s.round.Revealed, s.round.WinningSquare) {
			ws := s.round.WinningSquare
			snap.WinningSquare = &ws
		}
	}

	if s.pending != nil {
		p := *s.pending
		snap.Pending = &p
	}

	return snap
}
