package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/adapters/badger"
	"github.com/wspwll/risk-radar/internal/adapters/memory"
	pg "github.com/wspwll/risk-radar/internal/adapters/postgres"
	"github.com/wspwll/risk-radar/internal/adapters/sqlite"
	"github.com/wspwll/risk-radar/internal/config"
	"github.com/wspwll/risk-radar/internal/ports"
)

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (ports.KeyValueStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendBadger:
		bcfg := badger.DefaultConfig(cfg.DataDir)
		bcfg.Logger = log
		store, err := badger.Open(bcfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
