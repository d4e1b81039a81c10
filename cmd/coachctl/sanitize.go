package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"financial-coach/pkg/sanitizer"
)

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Strip reasoning markup from model output read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sanitizer.Sanitize(string(raw)))
			return err
		},
	}
}
