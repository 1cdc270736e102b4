package console

import (
	"fmt"
	"io"
	"square_bet/internal/model"
)

// Notifier Печатает события сессии как короткие сообщения
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Notify(ev model.Event) {
	var msg string
	switch ev.Type {
	case model.EventRoundStarted:
		msg = "Try to find the winning square."
	case model.EventRoundWon:
		msg = fmt.Sprintf("Congratulations! You won! You earned %d coins.", ev.Amount)
	case model.EventRoundLost:
		msg = fmt.Sprintf("Game Over. You lost %d coins. Better luck next time!", ev.Amount)
	case model.EventPurseExhausted:
		msg = "You've run out of coins. Type 'newgame' to start a new game."
	case model.EventHighScore:
		msg = fmt.Sprintf("New all-time high: $%d", ev.Amount)
	case model.EventCashedOut:
		msg = fmt.Sprintf("Congratulations! You're cashing out with $%d", ev.Amount)
	case model.EventNewGame:
		msg = fmt.Sprintf("Starting a new game with $%d", ev.Purse)
	default:
		return
	}

	fmt.Fprintf(n.out, "* %s\n", msg)
}
