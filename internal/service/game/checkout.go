package game

import (
	"context"
	"square_bet/internal/model"
)

func (s *serv) checkoutPhaseAllowed() bool {
	switch s.phase {
	case model.PhaseIdle, model.PhaseAwaitingBet, model.PhaseRoundResolved:
		return true
	}
	return false
}

func (s *serv) canCheckout() bool {
	return s.stats.GamesPlayed > s.cfg.CheckoutAfterGames() && s.checkoutPhaseAllowed()
}

// RequestCheckout Открывает диалог вывода средств
func (s *serv) RequestCheckout(_ context.Context) error {
	if !s.checkoutPhaseAllowed() {
		return model.ErrInvalidPhase
	}
	if s.stats.GamesPlayed <= s.cfg.CheckoutAfterGames() {
		return model.ErrCheckoutTooEarly
	}

	s.modal = model.ModalCheckout
	return nil
}

// DismissModal "Продолжить игру" в диалоге вывода.
// Диалог банкротства закрывается только новой игрой
func (s *serv) DismissModal(_ context.Context) error {
	if s.modal != model.ModalCheckout {
		return model.ErrNoModal
	}

	s.modal = model.ModalNone
	return nil
}

// Checkout Выводит кошелёк: обновляет рекорд и начинает сессию заново
func (s *serv) Checkout(ctx context.Context) (int, error) {
	if !s.checkoutPhaseAllowed() {
		return 0, model.ErrInvalidPhase
	}
	if s.stats.GamesPlayed <= s.cfg.CheckoutAfterGames() {
		return 0, model.ErrCheckoutTooEarly
	}

	cashed := s.purse
	raised, err := s.persistHighScore(ctx, cashed)
	if err != nil {
		return 0, err
	}
	if cashed > s.stats.AllTimeHighScore {
		s.stats.AllTimeHighScore = cashed
	}

	s.log.Info("cashed out", "amount", cashed, "games_played", s.stats.GamesPlayed, "high_score_raised", raised)
	s.emit(model.EventCashedOut, cashed)

	s.resetPurse()
	s.transition(model.PhaseAwaitingBet)
	return cashed, nil
}

// ForceNewGame Новая игра после банкротства
func (s *serv) ForceNewGame(_ context.Context) error {
	if s.phase != model.PhaseBankruptEnd || s.purse != 0 {
		return model.ErrPurseNotExhausted
	}

	s.log.Info("purse exhausted, starting new game", "games_played", s.stats.GamesPlayed)

	s.resetPurse()
	s.transition(model.PhaseAwaitingBet)
	s.emit(model.EventNewGame, s.purse)
	return nil
}
