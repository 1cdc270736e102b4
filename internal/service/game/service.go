package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"square_bet/internal/config"
	"square_bet/internal/model"
	"square_bet/internal/repository"
	"square_bet/internal/service"
	"strconv"
	"time"
)

type Deps struct {
	Cfg       config.GameConfig
	ScoreRepo repository.ScoreRepository
	TxManager service.TxManager // nil - без транзакций
	Rand      service.Rand      // nil - math/rand с текущим временем
	Clock     service.Clock     // nil - системные часы
	Notifier  service.Notifier  // nil - события отбрасываются
	Logger    *slog.Logger
}

type serv struct {
	cfg       config.GameConfig
	scoreRepo repository.ScoreRepository
	txManager service.TxManager
	rnd       service.Rand
	clock     service.Clock
	notifier  service.Notifier
	log       *slog.Logger

	phase   model.Phase
	purse   int
	bet     int
	stats   model.Stats
	round   *model.Round
	modal   model.Modal
	pending *model.PendingReset
}

// NewGameService Создать сессию. Рекорд читается из хранилища один раз
func NewGameService(ctx context.Context, deps Deps) (service.GameService, error) {
	if deps.Cfg == nil {
		return nil, errors.New("game config is required")
	}
	if deps.ScoreRepo == nil {
		return nil, errors.New("score repository is required")
	}

	s := &serv{
		cfg:       deps.Cfg,
		scoreRepo: deps.ScoreRepo,
		txManager: deps.TxManager,
		rnd:       deps.Rand,
		clock:     deps.Clock,
		notifier:  deps.Notifier,
		log:       deps.Logger,
	}
	if s.txManager == nil {
		s.txManager = passthroughTx{}
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.clock == nil {
		s.clock = systemClock{}
	}
	if s.notifier == nil {
		s.notifier = discardNotifier{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	highScore, err := s.loadHighScore(ctx)
	if err != nil {
		return nil, err
	}

	s.phase = model.PhaseIdle
	s.resetPurse()
	s.stats.AllTimeHighScore = highScore

	return s, nil
}

// loadHighScore Отсутствующее или битое значение заменяется начальным кошельком
func (s *serv) loadHighScore(ctx context.Context) (int, error) {
	raw, found, err := s.scoreRepo.Get(ctx, s.cfg.HighScoreKey())
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	if !found {
		return s.cfg.InitialPurse(), nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		s.log.Warn("ignoring unparsable high score", "key", s.cfg.HighScoreKey(), "value", raw)
		return s.cfg.InitialPurse(), nil
	}
	return v, nil
}

// resetPurse Возврат кошелька, экстремумов и счётчика игр к начальным значениям
func (s *serv) resetPurse() {
	initial := s.cfg.InitialPurse()
	s.purse = initial
	s.bet = 0
	s.stats.GamesPlayed = 0
	s.stats.HighestPurse = initial
	s.stats.LowestPurse = initial
	s.round = nil
	s.modal = model.ModalNone
	s.pending = nil
}

func (s *serv) transition(target model.Phase) {
	if !s.phase.CanTransitionTo(target) {
		// Вызывающий код проверяет фазу заранее
		panic(fmt.Sprintf("invalid phase transition %s -> %s", s.phase, target))
	}
	s.phase = target
}

func (s *serv) emit(t model.EventType, amount int) {
	ev := model.Event{
		Type:   t,
		Amount: amount,
		Purse:  s.purse,
		At:     s.clock.Now(),
	}
	if s.round != nil {
		ev.RoundID = s.round.ID
	}
	s.notifier.Notify(ev)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type discardNotifier struct{}

func (discardNotifier) Notify(model.Event) {}
