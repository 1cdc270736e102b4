package game

import (
	"context"
	"slices"
	"square_bet/internal/model"

	"github.com/google/uuid"
)

// StartRound Списывает ставку сразу и выбирает выигрышную клетку
func (s *serv) StartRound(ctx context.Context) error {
	if s.phase != model.PhaseAwaitingBet {
		return model.ErrInvalidPhase
	}
	if !s.canStart() {
		return model.ErrNoBet
	}

	// Ставка под риском до конца раунда
	s.setPurse(ctx, s.purse-s.bet)

	s.round = &model.Round{
		ID:            uuid.NewString(),
		Bet:           s.bet,
		WinningSquare: s.rnd.Intn(s.cfg.GridSize()),
		Revealed:      make([]int, 0, s.cfg.RevealLimit()),
	}
	s.pending = nil
	s.transition(model.PhaseRoundActive)

	s.log.Debug("round started", "round_id", s.round.ID, "bet", s.bet, "purse", s.purse)
	s.emit(model.EventRoundStarted, s.bet)
	return nil
}

// RevealSquare Открывает клетку. Исход решает только выигрышная клетка
// и число открытых клеток
func (s *serv) RevealSquare(ctx context.Context, index int) error {
	if s.phase != model.PhaseRoundActive || s.round == nil {
		return model.ErrRoundNotActive
	}
	if index < 0 || index >= s.cfg.GridSize() {
		return model.ErrSquareOutOfRange
	}
	if slices.Contains(s.round.Revealed, index) {
		return model.ErrAlreadyRevealed
	}

	s.round.Revealed = append(s.round.Revealed, index)

	switch {
	case index == s.round.WinningSquare:
		payout := s.round.Bet * s.cfg.PayoutMultiplier()
		s.round.Result = model.ResultWin
		s.stats.GamesPlayed++
		// Выигрыш зачисляется сразу, откладывается только сброс поля
		s.setPurse(ctx, s.purse+payout)
		s.resolve(model.PhaseRoundResolved)

		s.log.Info("round won", "round_id", s.round.ID, "payout", payout, "purse", s.purse)
		s.emit(model.EventRoundWon, payout)

	case len(s.round.Revealed) >= s.cfg.RevealLimit():
		s.round.Result = model.ResultLose
		s.stats.GamesPlayed++

		if s.purse == 0 {
			s.resolve(model.PhaseBankruptEnd)
			s.modal = model.ModalEndgame
		} else {
			s.resolve(model.PhaseRoundResolved)
		}

		s.log.Info("round lost", "round_id", s.round.ID, "bet", s.round.Bet, "purse", s.purse)
		s.emit(model.EventRoundLost, s.round.Bet)
		if s.phase == model.PhaseBankruptEnd {
			s.emit(model.EventPurseExhausted, 0)
		}
	}

	return nil
}

func (s *serv) resolve(target model.Phase) {
	s.transition(target)
	s.pending = &model.PendingReset{
		RoundID: s.round.ID,
		Due:     s.clock.Now().Add(s.cfg.ResetDelay()),
	}
}
