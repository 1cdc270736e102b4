package converter

import (
	"encoding/json"
	"square_bet/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStateResponse(t *testing.T) {
	ws := 3
	snap := model.Snapshot{
		Phase:         model.PhaseRoundResolved,
		Purse:         120,
		Bet:           20,
		MaxBet:        120,
		Stats:         model.Stats{GamesPlayed: 1, HighestPurse: 120, LowestPurse: 80, AllTimeHighScore: 120},
		RoundID:       "round-1",
		RoundBet:      20,
		Revealed:      []int{0, 3},
		Result:        model.ResultWin,
		WinningSquare: &ws,
	}

	resp := ToStateResponse(snap, 4)

	assert.Equal(t, "ROUND_RESOLVED", resp.Phase)
	assert.Equal(t, 120, resp.HighScore)
	assert.Equal(t, 80, resp.LowestPurse)
	assert.Equal(t, []string{"x", "?", "?", "$"}, resp.Board)
	require.NotNil(t, resp.Round)
	assert.Equal(t, "win", resp.Round.Result)
	assert.Equal(t, []int{0, 3}, resp.Round.Revealed)
	require.NotNil(t, resp.Round.WinningSquare)
	assert.Equal(t, 3, *resp.Round.WinningSquare)
	assert.False(t, resp.ResetPending)
}

func TestToStateResponse_NoRound(t *testing.T) {
	resp := ToStateResponse(model.Snapshot{Phase: model.PhaseIdle, Purse: 100}, 4)

	assert.Nil(t, resp.Round)
	assert.Equal(t, []string{"?", "?", "?", "?"}, resp.Board)
}

func TestToStateResponse_ClearedBoard(t *testing.T) {
	snap := model.Snapshot{
		Phase:        model.PhaseRoundResolved,
		RoundID:      "round-2",
		RoundBet:     10,
		Result:       model.ResultLose,
		BoardCleared: true,
	}

	resp := ToStateResponse(snap, 4)
	require.NotNil(t, resp.Round)
	assert.Equal(t, []int{}, resp.Round.Revealed)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"revealed":[]`)
}
