package model

import "time"

// EventType Тип события для слоя уведомлений
type EventType string

const (
	EventRoundStarted   EventType = "ROUND_STARTED"
	EventRoundWon       EventType = "ROUND_WON"
	EventRoundLost      EventType = "ROUND_LOST"
	EventPurseExhausted EventType = "PURSE_EXHAUSTED"
	EventHighScore      EventType = "HIGH_SCORE"
	EventCashedOut      EventType = "CASHED_OUT"
	EventNewGame        EventType = "NEW_GAME"
)

// Event Событие сессии
type Event struct {
	Type    EventType
	RoundID string
	Amount  int // Выигрыш, проигрыш, сумма вывода или новый рекорд
	Purse   int
	At      time.Time
}
