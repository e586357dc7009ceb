package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/tourneyview/internal/api"
	"github.com/mcoot/tourneyview/internal/config"
	"github.com/mcoot/tourneyview/internal/factory"
	"github.com/mcoot/tourneyview/internal/services/auth"
	redisstorage "github.com/mcoot/tourneyview/internal/storage/redis"
	"github.com/mcoot/tourneyview/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		AuthConfig: auth.Config{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
		Logger:      logger,
		StorageType: cfg.StorageType,
		SQLitePath:  cfg.SQLitePath,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create application; this loads the session from storage
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close failed", slog.String("error", err.Error()))
		}
	}()

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Dashboard:  app.DashboardService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Dashboard:  app.DashboardService,
		Hub:        app.Hub,
		StaticDir:  staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1) //nolint:gocritic // deferred close is best effort
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		// Close the hub first so open event streams end promptly
		app.Hub.Close()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
		}
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the bundled static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return ""
}
