package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "STORE_BACKEND", "DATA_DIR", "DATABASE_URL", "SNAPSHOTS_KEY", "ARCHIVE_KEY"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendBadger, cfg.StoreBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "risk_snapshots_v1", cfg.SnapshotsKey)
	assert.Equal(t, "risk_archive_v1", cfg.ArchiveKey)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/risks.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RISK_WORKBOOK", "q3.xlsx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "/tmp/risks.db", cfg.SQLitePath)
	assert.Equal(t, "q3.xlsx", cfg.WorkbookPath)
}

func TestValidate(t *testing.T) {
	base := Config{
		LogLevel:     "info",
		StoreBackend: BackendMemory,
		SnapshotsKey: "s",
		ArchiveKey:   "a",
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "redis" }},
		{"postgres without url", func(c *Config) { c.StoreBackend = BackendPostgres }},
		{"badger without dir", func(c *Config) { c.StoreBackend = BackendBadger }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"shared slot", func(c *Config) { c.ArchiveKey = "s" }},
		{"missing slot", func(c *Config) { c.SnapshotsKey = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadReturnsConfigOnValidationError(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load()
	require.Error(t, err)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
}
