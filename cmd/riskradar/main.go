package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/adapters/xlsx"
	"github.com/wspwll/risk-radar/internal/config"
	"github.com/wspwll/risk-radar/internal/logging"
	"github.com/wspwll/risk-radar/internal/ports"
	"github.com/wspwll/risk-radar/internal/services/persistence"
	"github.com/wspwll/risk-radar/internal/services/session"
	"github.com/wspwll/risk-radar/internal/workers/saverunner"
)

// app carries everything a subcommand needs. It is filled in by the root
// command's pre-run hook and torn down by main once the command returns.
type app struct {
	workbook string

	cfg        config.Config
	log        *zap.Logger
	store      ports.KeyValueStore
	saver      *saverunner.Runner
	session    *session.Session
	initResult session.InitResult
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{}
	err := a.rootCmd().ExecuteContext(ctx)
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "riskradar",
		Short:         "Track project risks, snapshots and exposure trends",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.workbook, "workbook", "", "risk workbook to import (overrides RISK_WORKBOOK)")
	root.AddCommand(a.reportCmd(), a.exportCmd(), a.snapshotCmd(), a.archiveCmd())
	return root
}

func (a *app) open(ctx context.Context) error {
	cfg, cfgErr := config.Load()
	if a.workbook != "" {
		cfg.WorkbookPath = a.workbook
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = logger
	if cfgErr != nil {
		// Not fatal; the store open below fails loudly if the backend
		// settings are actually unusable.
		a.log.Warn("invalid config", zap.Error(cfgErr))
	}

	a.store, err = openStore(ctx, cfg, a.log)
	if err != nil {
		a.log.Error("store unavailable", zap.String("backend", cfg.StoreBackend), zap.Error(err))
		return err
	}
	a.saver = saverunner.Start(ctx, a.store, saverunner.WithLogger(a.log.Named("saver")))

	gw := persistence.New(a.store, a.saver, persistence.Slots{
		Snapshots: cfg.SnapshotsKey,
		Archive:   cfg.ArchiveKey,
	}, a.log.Named("persistence"))

	a.session = session.Open(ctx, gw, session.WithLogger(a.log.Named("session")))
	a.initResult = a.session.Initialize(ctx, xlsx.Source{Path: cfg.WorkbookPath})
	return nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if a.saver != nil {
		if err := a.saver.Close(ctx); err != nil {
			a.log.Warn("pending saves not flushed", zap.Error(err))
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("store close", zap.Error(err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
