package service

import (
	"context"
	"square_bet/internal/model"
	"time"
)

// GameService Игровая сессия "найди выигрышную клетку".
// Не потокобезопасна: все вызовы идут от одного владельца
type GameService interface {
	PlayAgain(ctx context.Context) error
	PlaceBet(ctx context.Context, amount int) error
	StartRound(ctx context.Context) error
	RevealSquare(ctx context.Context, index int) error

	RequestCheckout(ctx context.Context) error
	DismissModal(ctx context.Context) error
	Checkout(ctx context.Context) (cashedOut int, err error)
	ForceNewGame(ctx context.Context) error

	Advance(now time.Time) bool
	ClampBet(input int) int
	Snapshot() model.Snapshot
}

// TxManager Транзакции вокруг чтения и записи рекорда. trm.Manager подходит
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Rand Источник случайных чисел, *rand.Rand подходит
type Rand interface {
	Intn(n int) int
}

type Clock interface {
	Now() time.Time
}

// Notifier Получатель событий для тостов и диалогов
type Notifier interface {
	Notify(event model.Event)
}
