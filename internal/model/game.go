package model

import "time"

// Phase Фаза игровой сессии
type Phase string

const (
	PhaseIdle          Phase = "IDLE"           // Раунд не идёт, ставка не настроена
	PhaseAwaitingBet   Phase = "AWAITING_BET"   // Игрок настраивает ставку
	PhaseRoundActive   Phase = "ROUND_ACTIVE"   // Ставка зафиксирована, клетки открываются
	PhaseRoundResolved Phase = "ROUND_RESOLVED" // Исход определён, ждём подтверждения
	PhaseBankruptEnd   Phase = "BANKRUPT_END"   // Кошелёк пуст, нужна новая игра
)

func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo проверяет допустимость перехода между фазами
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseIdle:          {PhaseAwaitingBet},
		PhaseAwaitingBet:   {PhaseRoundActive, PhaseAwaitingBet},
		PhaseRoundActive:   {PhaseRoundResolved, PhaseBankruptEnd},
		PhaseRoundResolved: {PhaseAwaitingBet},
		PhaseBankruptEnd:   {PhaseAwaitingBet},
	}

	for _, phase := range validTransitions[p] {
		if phase == target {
			return true
		}
	}
	return false
}

// Result Исход раунда
type Result string

const (
	ResultNone Result = ""
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Modal Диалог подтверждения, который должен показать интерфейс
type Modal string

const (
	ModalNone     Modal = ""
	ModalCheckout Modal = "checkout"
	ModalEndgame  Modal = "endgame"
)

// Round Состояние текущего раунда
type Round struct {
	ID            string
	Bet           int
	WinningSquare int
	Revealed      []int // Порядок открытия сохраняется
	Result        Result
	BoardCleared  bool // Отложенный сброс поля уже применён
}

// Stats Статистика сессии
type Stats struct {
	GamesPlayed      int
	HighestPurse     int
	LowestPurse      int
	AllTimeHighScore int
}

// PendingReset Отложенный визуальный сброс поля после исхода раунда
type PendingReset struct {
	RoundID string
	Due     time.Time
}

// Snapshot Полное состояние для отрисовки
type Snapshot struct {
	Phase  Phase
	Purse  int
	Bet    int
	MaxBet int
	Stats  Stats
	Modal  Modal

	// Поля раунда пустые, если раунда нет
	RoundID      string
	RoundBet     int
	Revealed     []int
	Result       Result
	BoardCleared bool
	// WinningSquare выставляется только когда выигрышная клетка уже открыта
	WinningSquare *int
	CanStart      bool
	CanCheckout   bool
	Pending       *PendingReset
}
