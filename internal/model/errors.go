package model

import "errors"

// Отказы операций игровой сессии. Состояние при отказе не меняется.
var (
	ErrInvalidPhase      = errors.New("action is not allowed in the current phase")
	ErrInvalidBet        = errors.New("bet must be positive")
	ErrBetExceedsPurse   = errors.New("bet exceeds purse")
	ErrPayoutOverflow    = errors.New("payout for this bet would overflow the purse")
	ErrNoBet             = errors.New("no valid bet placed")
	ErrRoundNotActive    = errors.New("round is not active")
	ErrSquareOutOfRange  = errors.New("square index out of range")
	ErrAlreadyRevealed   = errors.New("square already revealed")
	ErrCheckoutTooEarly  = errors.New("not enough games played to checkout")
	ErrPurseNotExhausted = errors.New("purse is not exhausted")
	ErrNoModal           = errors.New("no dialog to dismiss")
)
