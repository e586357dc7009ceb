package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds the server configuration loaded from environment variables
type Config struct {
	Host string `env:"TOURNEY_HOST"`
	Port int    `env:"TOURNEY_PORT" envDefault:"8080"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/tourney.db"`
	RedisURL    string `env:"REDIS_URL"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"tournament"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir string `env:"STATIC_DIR"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment take precedence over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	c.StorageType = strings.ToLower(strings.TrimSpace(c.StorageType))
	switch c.StorageType {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, sqlite or redis", c.StorageType)
	}

	if c.AdminUsername == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid TOURNEY_PORT %d", c.Port)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
