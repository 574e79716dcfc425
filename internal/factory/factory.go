package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/wordwolf/internal/dependencies/clock"
	"github.com/mcoot/wordwolf/internal/dependencies/ids"
	"github.com/mcoot/wordwolf/internal/dependencies/random"
	"github.com/mcoot/wordwolf/internal/services/game"
	"github.com/mcoot/wordwolf/internal/services/room"
	"github.com/mcoot/wordwolf/internal/services/theme"
	"github.com/mcoot/wordwolf/internal/storage"
	"github.com/mcoot/wordwolf/internal/storage/memory"
	redisstorage "github.com/mcoot/wordwolf/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordwolf/internal/storage/sqlite"
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
	Storage     storage.Storage
	StorageType string

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Services
	ThemeService      *theme.Service
	TransitionService *room.TransitionService
	RoomController    *room.Controller
	GameController    *game.Controller

	Logger *slog.Logger
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
	// SQLitePath is the database file used when StorageType is "sqlite"
	SQLitePath string
	// ThemesPath is a theme file loaded on startup (optional)
	ThemesPath string
	// Location is the time zone game end times are reported in (optional)
	Location *time.Location
	// RandomSeed makes role and word assignment reproducible when non-zero
	RandomSeed uint64
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = redisStore
	case StorageTypeSQLite:
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}

	// Create external dependencies
	clk := clock.New()
	if cfg.Location != nil {
		clk = clock.NewInLocation(cfg.Location)
	}
	var rnd random.Random = random.New()
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	app := newWithDependencies(store, clk, rnd, ids.New(), logger)
	app.StorageType = storageType

	if cfg.ThemesPath != "" {
		if _, err := app.ThemeService.LoadFromFile(ctx, cfg.ThemesPath); err != nil {
			_ = app.Close()
			return nil, err
		}
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	gen ids.Generator,
	logger *slog.Logger,
) *App {
	// Create services
	themeService := theme.New(store, logger)
	transition := room.NewTransitionService(themeService, game.NewFactory(gen), clk, rnd, logger)
	roomController := room.NewController(store, room.NewFactory(gen), transition, logger)
	gameController := game.NewController(store, clk, logger)

	return &App{
		Storage:           store,
		StorageType:       StorageTypeMemory,
		Clock:             clk,
		Random:            rnd,
		IDs:               gen,
		ThemeService:      themeService,
		TransitionService: transition,
		RoomController:    roomController,
		GameController:    gameController,
		Logger:            logger,
	}
}

// Close releases the storage backend if it holds resources
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
