package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"financial-coach/config"
	"financial-coach/internal/coach/repository"
	"financial-coach/internal/coach/repository/sqlite"
	"financial-coach/pkg/log"
)

type rootOptions struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "coachctl",
		Short: "Operator tools for the financial coach service",
		Long: `coachctl inspects the coach store and exercises the reply pipeline
without going through the HTTP API.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config.yaml (default: search ./config, ., /etc/app/)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides storage.path)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newHistoryCmd(opts),
		newSanitizeCmd(),
		newAskCmd(opts),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

func (o *rootOptions) logger() log.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return log.Init(log.ZapConfig{Level: level, Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
}

// openRepository opens the store named by --db, or the configured one.
func (o *rootOptions) openRepository(ctx context.Context, l log.Logger) (repository.Repository, error) {
	if o.dbPath != "" {
		return sqlite.New(ctx, o.dbPath, l)
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Driver != config.StorageDriverSQLite {
		return nil, fmt.Errorf("storage driver %q keeps no history; pass --db", cfg.Storage.Driver)
	}
	return sqlite.New(ctx, cfg.Storage.Path, l)
}
