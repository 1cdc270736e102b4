package app

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"square_bet/internal/api/console"
	"square_bet/internal/config"
	"square_bet/internal/config/env"
	"square_bet/internal/repository"
	"square_bet/internal/repository/score_memory_repo"
	"square_bet/internal/repository/score_pg_repo"
	"square_bet/internal/repository/score_sqlite_repo"
	"square_bet/internal/service"
	"square_bet/internal/service/game"
	"square_bet/pkg/random"
	"strings"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	logger *slog.Logger

	// Game rules
	gameCfg config.GameConfig

	// Score storage
	storeCfg  config.StoreConfig
	pgConfig  config.PGConfig
	dbClient  *pgxpool.Pool
	sqliteDB  *sql.DB
	txManager service.TxManager
	scoreRepo repository.ScoreRepository

	// Game bits
	clock    service.Clock
	rnd      service.Rand
	notifier service.Notifier
	gameServ service.GameService

	// Console
	in          io.Reader
	out         io.Writer
	consoleHand *console.Handler
}

func newServiceProvider(in io.Reader, out io.Writer) *ServiceProvider {
	return &ServiceProvider{
		in:  in,
		out: out,
	}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

// Logger Пишет в stderr, чтобы не мешать игровому выводу
func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		opts := &slog.HandlerOptions{
			Level: parseLogLevel(sp.LogCfg().Level()),
		}

		if sp.LogCfg().Format() == "json" {
			sp.logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
		} else {
			sp.logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
		}
	}
	return sp.logger
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = score_pg_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) SQLiteDB(ctx context.Context) *sql.DB {
	if sp.sqliteDB == nil {
		db, err := score_sqlite_repo.Open(ctx, sp.StoreCfg().SQLitePath())
		if err != nil {
			panic("failed to open sqlite: " + err.Error())
		}
		sp.sqliteDB = db
	}
	return sp.sqliteDB
}

// TXManager Транзакции есть только у postgres, для остальных хранилищ nil
func (sp *ServiceProvider) TXManager(ctx context.Context) service.TxManager {
	if sp.txManager == nil && sp.StoreCfg().Driver() == env.DriverPostgres {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) ScoreRepository(ctx context.Context) repository.ScoreRepository {
	if sp.scoreRepo == nil {
		switch sp.StoreCfg().Driver() {
		case env.DriverPostgres:
			sp.scoreRepo = score_pg_repo.NewScoreRepository(sp.DBClient(ctx))
		case env.DriverSQLite:
			sp.scoreRepo = score_sqlite_repo.NewScoreRepository(sp.SQLiteDB(ctx))
		default:
			sp.scoreRepo = score_memory_repo.NewScoreRepository()
		}
		sp.Logger().Info("score store ready", "driver", sp.StoreCfg().Driver())
	}
	return sp.scoreRepo
}

func (sp *ServiceProvider) Clock() service.Clock {
	if sp.clock == nil {
		sp.clock = systemClock{}
	}
	return sp.clock
}

func (sp *ServiceProvider) Rand() service.Rand {
	if sp.rnd == nil {
		seed, err := random.NewSeed()
		if err != nil {
			panic("failed to seed rng: " + err.Error())
		}
		sp.rnd = rand.New(rand.NewSource(seed))
	}
	return sp.rnd
}

func (sp *ServiceProvider) Notifier() service.Notifier {
	if sp.notifier == nil {
		sp.notifier = console.NewNotifier(sp.out)
	}
	return sp.notifier
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		serv, err := game.NewGameService(ctx, game.Deps{
			Cfg:       sp.GameCfg(),
			ScoreRepo: sp.ScoreRepository(ctx),
			TxManager: sp.TXManager(ctx),
			Rand:      sp.Rand(),
			Clock:     sp.Clock(),
			Notifier:  sp.Notifier(),
			Logger:    sp.Logger(),
		})
		if err != nil {
			panic("failed to create game service: " + err.Error())
		}
		sp.gameServ = serv
	}
	return sp.gameServ
}

func (sp *ServiceProvider) ConsoleHandler(ctx context.Context) *console.Handler {
	if sp.consoleHand == nil {
		sp.consoleHand = console.NewHandler(console.HandlerDeps{
			Serv:     sp.GameService(ctx),
			Clock:    sp.Clock(),
			GridSize: sp.GameCfg().GridSize(),
			In:       sp.in,
			Out:      sp.out,
			Logger:   sp.Logger(),
		})
	}
	return sp.consoleHand
}

// Close Закрывает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.sqliteDB != nil {
		if err := sp.sqliteDB.Close(); err != nil {
			sp.Logger().Error("failed to close sqlite", "error", err)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
