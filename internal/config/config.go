package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogOutput string `env:"LOG_OUTPUT" envDefault:"stderr"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"badger" validate:"oneof=memory badger sqlite postgres"`
	DataDir      string `env:"DATA_DIR" envDefault:"./data" validate:"required_if=StoreBackend badger"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"./data/riskradar.db" validate:"required_if=StoreBackend sqlite"`
	DatabaseURL  string `env:"DATABASE_URL" validate:"required_if=StoreBackend postgres"`

	WorkbookPath string `env:"RISK_WORKBOOK" envDefault:"risk.xlsx"`
	SnapshotsKey string `env:"SNAPSHOTS_KEY" envDefault:"risk_snapshots_v1" validate:"required"`
	ArchiveKey   string `env:"ARCHIVE_KEY" envDefault:"risk_archive_v1" validate:"required,nefield=SnapshotsKey"`
}

var validate = validator.New()

// Load reads the environment. The returned Config is usable even when err
// is non-nil; callers decide whether a validation failure is fatal.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
