package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"square_bet/internal/config"
	"syscall"
)

type App struct {
	ServiceProvider *ServiceProvider
	in              io.Reader
	out             io.Writer
}

func NewApp() *App {
	return &App{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.in, s.out)
}

func (s *App) Run() error {
	// .env необязателен, его отсутствие только логируется
	envErr := config.Load(".env")
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	logger := s.ServiceProvider.Logger()
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := s.ServiceProvider.ConsoleHandler(ctx)

	logger.Info("starting square betting game",
		"initial_purse", s.ServiceProvider.GameCfg().InitialPurse(),
		"grid_size", s.ServiceProvider.GameCfg().GridSize(),
	)
	err := h.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}

	logger.Info("game stopped")
	return nil
}
