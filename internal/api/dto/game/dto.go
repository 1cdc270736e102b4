package game

type StateResponse struct {
	Phase        string   `json:"phase"`           // Фаза сессии
	Purse        int      `json:"purse"`           // Кошелёк
	Bet          int      `json:"bet"`             // Текущая ставка
	MaxBet       int      `json:"max_bet"`         // Максимальная ставка
	GamesPlayed  int      `json:"games_played"`    // Сыграно раундов
	HighestPurse int      `json:"highest_purse"`   // Максимум с последнего сброса
	LowestPurse  int      `json:"lowest_purse"`    // Минимум с последнего сброса
	HighScore    int      `json:"high_score"`      // Рекорд за всё время
	Round        *Round   `json:"round,omitempty"` // Раунд, если есть
	Modal        string   `json:"modal,omitempty"` // checkout или endgame
	CanStart     bool     `json:"can_start"`       // Можно начинать раунд
	CanCheckout  bool     `json:"can_checkout"`    // Можно выводить
	ResetPending bool     `json:"reset_pending"`   // Ждём сброса поля
	Board        []string `json:"board,omitempty"` // Клетки: "?", "x" или "$"
}

type Round struct {
	ID            string `json:"id"`
	Bet           int    `json:"bet"`
	Revealed      []int  `json:"revealed"`
	Result        string `json:"result,omitempty"`         // win или lose
	WinningSquare *int   `json:"winning_square,omitempty"` // Только если открыта
}
