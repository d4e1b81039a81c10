package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"financial-coach/internal/coach"
	"financial-coach/internal/coach/repository"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [user-id]",
		Short: "Print the stored conversation of a user, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := opts.logger()

			repo, err := opts.openRepository(ctx, l)
			if err != nil {
				return err
			}
			defer repo.Close()

			turns, err := repo.ListTurns(ctx, repository.ListTurnsOptions{UserID: args[0], Limit: limit})
			if err != nil {
				return fmt.Errorf("list turns: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(turns) == 0 {
				fmt.Fprintf(out, "no turns stored for %s\n", args[0])
				return nil
			}
			for _, t := range turns {
				fmt.Fprintf(out, "[%s] %s%s\n%s\n\n", t.Timestamp.Format(time.RFC3339), t.Sender, errorMark(t), t.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 2*coach.DefaultMaxHistoryLength, "Number of latest turns to print")
	return cmd
}

func errorMark(t coach.Turn) string {
	if t.Error {
		return " (error)"
	}
	return ""
}
