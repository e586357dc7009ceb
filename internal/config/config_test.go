package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageType)
	assert.Equal(t, "data/tourney.db", cfg.SQLitePath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "tournament", cfg.AdminPassword)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TOURNEY_PORT", "9090")
	t.Setenv("STORAGE_TYPE", "Memory")
	t.Setenv("ADMIN_USERNAME", "director")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageType)
	assert.Equal(t, "director", cfg.AdminUsername)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFromDotEnvFile(t *testing.T) {
	// Ensure the variable is unset so the file value applies, and
	// cleaned up afterwards since godotenv writes to the process env
	t.Setenv("ADMIN_USERNAME", "")
	require.NoError(t, os.Unsetenv("ADMIN_USERNAME"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_USERNAME=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AdminUsername)
}

func TestEnvironmentOverridesDotEnv(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_USERNAME=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AdminUsername)
}

func TestRedisRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestInvalidStorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "postgres")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "STORAGE_TYPE")
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("TOURNEY_PORT", "70000")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "TOURNEY_PORT")
}

func TestEmptyAdminPasswordRejected(t *testing.T) {
	cfg := Config{StorageType: StorageMemory, Port: 8080, AdminUsername: "admin"}
	assert.Error(t, cfg.Validate())
}
