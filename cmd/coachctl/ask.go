package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"financial-coach/config"
	"financial-coach/internal/coach"
	"financial-coach/internal/coach/repository"
	"financial-coach/internal/coach/session"
	"financial-coach/internal/coach/usecase"
	"financial-coach/pkg/llmprovider"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var persist bool

	cmd := &cobra.Command{
		Use:   "ask [user-id] [message...]",
		Short: "Run one coach turn against the configured backend",
		Long: `Runs the full turn pipeline (history, prompt, model, sanitizer) once
and prints the reply. Stored history is used as context; the new exchange is
only written back with --persist.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := opts.logger()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			repo := repository.NewNop()
			if persist || opts.dbPath != "" || cfg.Storage.Driver == config.StorageDriverSQLite {
				r, err := opts.openRepository(ctx, l)
				if err != nil {
					return err
				}
				defer r.Close()
				repo = r
			}
			if !persist {
				repo = readOnly{repo}
			}

			backend := llmprovider.SelectBackend(ctx, &cfg.LLM)
			if backend.Kind == llmprovider.BackendStub {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: stub backend (%v)\n", backend.Reason)
			}
			manager := llmprovider.NewManager(backend, &llmprovider.Config{RequestTimeout: cfg.Coach.RequestTimeout}, l)

			uc := usecase.New(l, session.NewMemory(cfg.Coach.MaxHistoryLength), repo, manager, usecase.Config{
				MaxHistoryLength: cfg.Coach.MaxHistoryLength,
				Temperature:      cfg.Coach.Temperature,
				TopP:             cfg.Coach.TopP,
				MaxTokens:        cfg.Coach.MaxTokens,
			})

			out, err := uc.HandleTurn(ctx, coach.TurnInput{UserID: args[0], Message: strings.Join(args[1:], " ")})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
			if out.Degraded {
				return fmt.Errorf("turn failed: %w", out.Cause)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Write the exchange to the store")
	return cmd
}

// readOnly drops writes so ask can use stored history without changing it.
type readOnly struct {
	repository.Repository
}

func (readOnly) AppendTurn(ctx context.Context, opt repository.AppendTurnOptions) (string, error) {
	return "", nil
}
