package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/blockhive/internal/dependencies/clock"
	"github.com/mcoot/blockhive/internal/dependencies/random"
	"github.com/mcoot/blockhive/internal/dependencies/scheduler"
	"github.com/mcoot/blockhive/internal/services/board"
	"github.com/mcoot/blockhive/internal/services/catalog"
	"github.com/mcoot/blockhive/internal/services/game"
	"github.com/mcoot/blockhive/internal/services/scoring"
	"github.com/mcoot/blockhive/internal/storage"
	"github.com/mcoot/blockhive/internal/storage/memory"
	redisstorage "github.com/mcoot/blockhive/internal/storage/redis"
	sqlitestorage "github.com/mcoot/blockhive/internal/storage/sqlite"
	"github.com/mcoot/blockhive/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	BoardService   *board.Service
	ScoringService *scoring.Service
	Generator      *catalog.Generator
	GameController *game.Controller

	// Event stream
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds the database settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// GameConfig holds the controller tunables
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	gameCfg := cfg.GameConfig
	if gameCfg == (game.Config{}) {
		gameCfg = game.DefaultConfig()
	}

	app, err := newWithDependencies(ctx, store, clock.New(), random.New(), scheduler.New(), gameCfg, logger)
	if err != nil {
		closeStorage(store)
		return nil, err
	}
	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		return sqlitestorage.New(*cfg.SQLiteConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	ctx context.Context,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	gameCfg game.Config,
	logger *slog.Logger,
) (*App, error) {
	boardService := board.New(logger)
	scoringService := scoring.New(store, logger)
	generator := catalog.New(rnd)

	gameController, err := game.NewController(ctx, gameCfg, boardService, scoringService, generator, sched, clk, logger)
	if err != nil {
		return nil, err
	}

	hub := sse.NewHub(logger)
	go hub.Run()
	broadcaster := sse.NewBroadcaster(hub, logger)
	gameController.OnChange(broadcaster.Observe)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Scheduler:      sched,
		BoardService:   boardService,
		ScoringService: scoringService,
		Generator:      generator,
		GameController: gameController,
		Hub:            hub,
		Broadcaster:    broadcaster,
	}, nil
}

// Close stops the event hub and releases the storage backend
func (a *App) Close() error {
	a.Hub.Close()
	return closeStorage(a.Storage)
}

func closeStorage(store storage.Storage) error {
	if c, ok := store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
