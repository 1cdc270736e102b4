package converter

import (
	dto "square_bet/internal/api/dto/game"
	"square_bet/internal/model"
)

const (
	cellHidden = "?"
	cellMiss   = "x"
	cellWin    = "$"
)

func ToStateResponse(snap model.Snapshot, gridSize int) dto.StateResponse {
	resp := dto.StateResponse{
		Phase:        snap.Phase.String(),
		Purse:        snap.Purse,
		Bet:          snap.Bet,
		MaxBet:       snap.MaxBet,
		GamesPlayed:  snap.Stats.GamesPlayed,
		HighestPurse: snap.Stats.HighestPurse,
		LowestPurse:  snap.Stats.LowestPurse,
		HighScore:    snap.Stats.AllTimeHighScore,
		Modal:        string(snap.Modal),
		CanStart:     snap.CanStart,
		CanCheckout:  snap.CanCheckout,
		ResetPending: snap.Pending != nil,
		Board:        ToBoard(snap, gridSize),
	}

	if snap.RoundID != "" {
		// Пустой список, а не null, после сброса поля
		revealed := make([]int, len(snap.Revealed))
		copy(revealed, snap.Revealed)

		resp.Round = &dto.Round{
			ID:            snap.RoundID,
			Bet:           snap.RoundBet,
			Revealed:      revealed,
			Result:        string(snap.Result),
			WinningSquare: snap.WinningSquare,
		}
	}

	return resp
}

// ToBoard Клетки поля в порядке индексов
func ToBoard(snap model.Snapshot, gridSize int) []string {
	board := make([]string, gridSize)
	for i := range board {
		board[i] = cellHidden
	}

	for _, idx := range snap.Revealed {
		if idx < 0 || idx >= gridSize {
			continue
		}
		if snap.WinningSquare != nil && *snap.WinningSquare == idx {
			board[idx] = cellWin
		} else {
			board[idx] = cellMiss
		}
	}

	return board
}
