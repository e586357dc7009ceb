package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/tourneyview/internal/dependencies/clock"
	"github.com/mcoot/tourneyview/internal/dependencies/ids"
	"github.com/mcoot/tourneyview/internal/services/auth"
	"github.com/mcoot/tourneyview/internal/services/dashboard"
	"github.com/mcoot/tourneyview/internal/services/persist"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
	"github.com/mcoot/tourneyview/internal/storage"
	"github.com/mcoot/tourneyview/internal/storage/memory"
	redisstorage "github.com/mcoot/tourneyview/internal/storage/redis"
	"github.com/mcoot/tourneyview/internal/storage/sqlite"
	"github.com/mcoot/tourneyview/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store   storage.Store
	Persist *persist.Adapter

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	AuthService      *auth.Service
	Controller       *viewctl.Controller
	DashboardService *dashboard.Service
	Hub              *sse.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds the admin identity (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// session initialised from storage
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	authCfg := cfg.AuthConfig
	if authCfg.Username == "" && authCfg.Password == "" {
		authCfg = auth.DefaultConfig()
	}

	app, err := newWithDependencies(ctx, store, clock.New(), ids.New(), authCfg, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

// Close releases the storage backend and stops the event hub
func (a *App) Close() error {
	a.Hub.Close()
	return a.Store.Close()
}

func newStore(ctx context.Context, cfg Config) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.New(ctx, cfg.SQLitePath)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'sqlite' or 'redis'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Store, clk clock.Clock, idGen ids.Generator, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	authService, err := auth.New(authCfg, logger)
	if err != nil {
		return nil, err
	}

	adapter := persist.New(store, logger)
	controller := viewctl.NewController(adapter, authService, logger)
	dashboardService := dashboard.New(controller, clk, idGen, logger)

	hub := sse.NewHub(logger)
	go hub.Run()
	controller.OnTournamentChange(hub.TournamentChanged)

	controller.Init(ctx)

	return &App{
		Store:            store,
		Persist:          adapter,
		Clock:            clk,
		IDs:              idGen,
		AuthService:      authService,
		Controller:       controller,
		DashboardService: dashboardService,
		Hub:              hub,
	}, nil
}
