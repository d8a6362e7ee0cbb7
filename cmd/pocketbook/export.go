package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/exchange"
	"github.com/pocketbook/pocketbook/internal/storage"
)

func exportCmd() *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export [collection]",
		Short: "Export data to JSON or CSV files",
		Long: `Export one collection (accounts, transactions, budgets, categories,
settings) or, with no argument, all of them. JSON round-trips every
collection; CSV covers everything except settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f := exchange.Format(format)
			if f != exchange.FormatJSON && f != exchange.FormatCSV {
				return fmt.Errorf("%w: unsupported export format %q", common.ErrValidation, format)
			}

			keys := storage.Keys
			if len(args) == 1 {
				keys = []string{args[0]}
			}

			_, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			for _, key := range keys {
				if f == exchange.FormatCSV && key == storage.KeySettings && len(args) == 0 {
					continue
				}

				name, err := exchange.FileName(key, f)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, name)

				out, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", path, err)
				}

				switch f {
				case exchange.FormatJSON:
					err = exchange.ExportJSON(ctx, store, key, out)
				case exchange.FormatCSV:
					err = exchange.ExportCSV(ctx, store, key, out)
				}
				if cerr := out.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return fmt.Errorf("failed to export %s: %w", key, err)
				}

				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %s to %s", key, path)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(exchange.FormatJSON), "export format (json, csv)")
	cmd.Flags().StringVar(&outDir, "dir", ".", "directory to write the export files into")

	cmd.ValidArgs = append([]string{}, storage.Keys...)
	cmd.Args = cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs)

	return cmd
}
