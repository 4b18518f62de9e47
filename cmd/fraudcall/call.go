package main

import (
	"fmt"
	"os"

	"github.com/demobank/fraudcall/internal/dialogue"
	"github.com/demobank/fraudcall/internal/platform"
	"github.com/spf13/cobra"
)

func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call",
		Short: "Run one interactive verification call",
		Long: `Start a single fraud-alert verification call on the console.

The console stands in for the speech platform: agent lines are printed
and caller utterances are read one per line. The call ends when the
dialogue reaches a terminal outcome or on Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine, err := dialogue.NewEngine(ctx, store)
			if err != nil {
				return fmt.Errorf("failed to start call: %w", err)
			}

			console := platform.NewConsole(os.Stdin, os.Stdout)
			return platform.RunCall(ctx, engine, console, console)
		},
	}
}
