package main

import (
	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/tui"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal UI",
		Long: `Browse the dashboard, transactions, accounts, budgets, and categories in a
full-screen terminal UI. The UI is read-only; use the CLI commands to make
changes and press r to reload.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(ctx, l)
		},
	}
}
