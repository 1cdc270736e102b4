package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"square_bet/internal/converter"
	"square_bet/internal/model"
	"square_bet/internal/service"
	"strconv"
	"strings"
	"time"
)

const defaultTick = 250 * time.Millisecond

var errQuit = errors.New("quit")

type HandlerDeps struct {
	Serv     service.GameService
	Clock    service.Clock
	GridSize int
	In       io.Reader
	Out      io.Writer
	Tick     time.Duration // Период проверки отложенного сброса поля
	Logger   *slog.Logger
}

// Handler Терминальный интерфейс игры: читает команды и рисует состояние
type Handler struct {
	serv     service.GameService
	clock    service.Clock
	gridSize int
	in       io.Reader
	out      io.Writer
	tick     time.Duration
	log      *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		serv:     deps.Serv,
		clock:    deps.Clock,
		gridSize: deps.GridSize,
		in:       deps.In,
		out:      deps.Out,
		tick:     deps.Tick,
		log:      deps.Logger,
	}
	if h.tick <= 0 {
		h.tick = defaultTick
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	return h
}

// Run Обрабатывает команды до EOF, quit или отмены контекста
func (h *Handler) Run(ctx context.Context) error {
	// Отмена при выходе освобождает читающую горутину
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)

	// Чтение блокируется, поэтому идёт в отдельной горутине.
	// Сессией владеет только цикл ниже
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(h.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	h.printHelp()
	h.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if h.serv.Advance(h.clock.Now()) {
				h.render()
			}

		case line, ok := <-lines:
			if !ok {
				return <-errc
			}

			h.serv.Advance(h.clock.Now())
			err := h.Exec(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				h.log.Debug("command rejected", "command", line, "error", err)
				fmt.Fprintf(h.out, "rejected: %v\n", err)
			}
			h.render()
		}
	}
}

// Exec Выполняет одну команду
func (h *Handler) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]

	// Голое число - открыть клетку
	if idx, err := strconv.Atoi(cmd); err == nil {
		return h.serv.RevealSquare(ctx, idx)
	}

	switch cmd {
	case "help", "?":
		h.printHelp()
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "start", "again", "play":
		return h.serv.PlayAgain(ctx)
	case "bet":
		amount, err := intArg(args)
		if err != nil {
			return err
		}
		// Ввод ограничивается кошельком, неположительная ставка отклоняется
		return h.serv.PlaceBet(ctx, h.serv.ClampBet(amount))
	case "go":
		return h.serv.StartRound(ctx)
	case "reveal", "r":
		idx, err := intArg(args)
		if err != nil {
			return err
		}
		return h.serv.RevealSquare(ctx, idx)
	case "checkout":
		return h.serv.RequestCheckout(ctx)
	case "cashout":
		_, err := h.serv.Checkout(ctx)
		return err
	case "continue":
		return h.serv.DismissModal(ctx)
	case "newgame":
		return h.serv.ForceNewGame(ctx)
	case "state":
		return h.printState()
	}

	return fmt.Errorf("unknown command %q, type help", cmd)
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one number")
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", args[0])
	}
	return v, nil
}

func (h *Handler) printHelp() {
	fmt.Fprint(h.out, `Square Betting Game
  start | again      go to the bet screen
  bet N              place a bet of N coins
  go                 start the round
  reveal N | N       reveal square N
  checkout           cash out (after 5 games)
  cashout | continue answer the checkout dialog
  newgame            start over after running out of coins
  state              print the state as JSON
  quit
`)
}

func (h *Handler) printState() error {
	resp := converter.ToStateResponse(h.serv.Snapshot(), h.gridSize)
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	fmt.Fprintln(h.out, string(data))
	return nil
}

func (h *Handler) render() {
	snap := h.serv.Snapshot()

	fmt.Fprintf(h.out, "\nIn your purse: $%d", snap.Purse)
	if snap.Bet > 0 {
		fmt.Fprintf(h.out, "   Current bet placed: $%d", snap.Bet)
	}
	fmt.Fprintf(h.out, "\nGames Played: %d   Highest purse value of all time: $%d\n",
		snap.Stats.GamesPlayed, snap.Stats.AllTimeHighScore)
	fmt.Fprintf(h.out, "Current game: (Highest Purse: $%d, Lowest Purse: $%d)\n",
		snap.Stats.HighestPurse, snap.Stats.LowestPurse)

	board := converter.ToBoard(snap, h.gridSize)
	cols := boardColumns(h.gridSize)
	for i, cell := range board {
		fmt.Fprintf(h.out, " %2d:%s", i, cell)
		if (i+1)%cols == 0 || i == len(board)-1 {
			fmt.Fprintln(h.out)
		}
	}

	switch snap.Modal {
	case model.ModalCheckout:
		fmt.Fprintf(h.out, "Checkout: you've played %d games. Would you like to cash out with $%d? (cashout/continue)\n",
			snap.Stats.GamesPlayed, snap.Purse)
	case model.ModalEndgame:
		fmt.Fprintln(h.out, "Game Over: you've run out of coins. Would you like to start a new game? (newgame)")
	}

	fmt.Fprintf(h.out, "[%s]> ", snap.Phase)
}

// boardColumns Квадратное поле рисуется квадратом, иначе по 4 клетки в ряд
func boardColumns(gridSize int) int {
	cols := int(math.Sqrt(float64(gridSize)))
	if cols*cols != gridSize {
		return 4
	}
	return cols
}
