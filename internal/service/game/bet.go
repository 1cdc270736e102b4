package game

import (
	"context"
	"math"
	"square_bet/internal/model"
)

// PlayAgain Переход к настройке ставки из начального экрана или после исхода раунда.
// Прошлая ставка сохраняется, но не больше кошелька
func (s *serv) PlayAgain(_ context.Context) error {
	if s.phase != model.PhaseIdle && s.phase != model.PhaseRoundResolved {
		return model.ErrInvalidPhase
	}

	s.round = nil
	s.pending = nil
	if s.modal == model.ModalCheckout {
		s.modal = model.ModalNone
	}
	s.bet = s.ClampBet(s.bet)

	s.transition(model.PhaseAwaitingBet)
	return nil
}

// PlaceBet Установка ставки, 0 < amount <= maxBet
func (s *serv) PlaceBet(_ context.Context, amount int) error {
	if s.phase != model.PhaseAwaitingBet {
		return model.ErrInvalidPhase
	}
	if amount <= 0 {
		return model.ErrInvalidBet
	}
	if amount > s.purse {
		return model.ErrBetExceedsPurse
	}
	if amount > s.maxBet() {
		return model.ErrPayoutOverflow
	}

	s.bet = amount
	return nil
}

// ClampBet Ограничивает ввод ставки кошельком. Отрицательный ввод даёт 0
func (s *serv) ClampBet(input int) int {
	if input < 0 {
		return 0
	}
	return min(input, s.maxBet())
}

// maxBet Наибольшая ставка, выигрыш по которой помещается в int.
// После выигрыша кошелёк равен purse + bet*(multiplier-1)
func (s *serv) maxBet() int {
	m := s.cfg.PayoutMultiplier()
	if m <= 1 {
		return s.purse
	}
	return min(s.purse, (math.MaxInt-s.purse)/(m-1))
}

func (s *serv) canStart() bool {
	return s.phase == model.PhaseAwaitingBet && s.bet > 0 && s.bet <= s.maxBet()
}
