package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/exchange"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from JSON, CSV, or OFX files",
	}

	cmd.AddCommand(importFileCmd())
	cmd.AddCommand(importOFXCmd())

	return cmd
}

func importFileCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "file <collection> <path>",
		Short: "Replace a collection from a JSON or CSV file",
		Long: `Replace a stored collection wholesale with the contents of a file. The
file is parsed in full before anything is written, so a malformed file
leaves the stored data untouched. The format is taken from the file
extension.

Imported data replaces the collection as-is; balances are not recomputed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, path := args[0], args[1]

			var format exchange.Format
			switch strings.ToLower(filepath.Ext(path)) {
			case ".json":
				format = exchange.FormatJSON
			case ".csv":
				format = exchange.FormatCSV
			default:
				return fmt.Errorf("%w: cannot tell the format of %s", common.ErrValidation, path)
			}

			_, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if !force {
				prompt := fmt.Sprintf("Replace all stored %s with the contents of %s?", key, path)
				if !cli.Confirm(os.Stdout, os.Stdin, prompt) {
					fmt.Println(cli.InfoStyle.Render("Cancelled."))
					return nil
				}
			}

			in, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer in.Close()

			switch format {
			case exchange.FormatJSON:
				err = exchange.ImportJSON(ctx, store, key, in)
			case exchange.FormatCSV:
				err = exchange.ImportCSV(ctx, store, key, in)
			}
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", key, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %s from %s", key, path)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	cmd.ValidArgs = append([]string{}, storage.Keys...)

	return cmd
}

func importOFXCmd() *cobra.Command {
	var (
		account  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "ofx <files...>",
		Short: "Import bank statement transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX statements exported by your bank.
Each entry is recorded through the ledger, so account balances update as
if the transactions had been entered by hand.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			acc, err := resolveAccount(ctx, l, account)
			if err != nil {
				return err
			}

			var pending []importedTransaction
			for _, path := range args {
				in, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}
				txns, err := exchange.ParseOFX(in, acc.ID)
				in.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", path, err)
				}
				for _, t := range txns {
					pending = append(pending, importedTransaction{file: path, txn: t})
				}
			}

			if len(pending) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found in the given files."))
				return nil
			}

			bar := progressbar.NewOptions(len(pending),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing transactions..."),
			)

			imported := 0
			for _, p := range pending {
				if category != "" {
					p.txn.Category = category
				}
				if _, err := l.AddTransaction(ctx, p.txn); err != nil {
					return fmt.Errorf("failed to record transaction from %s: %w", p.file, err)
				}
				imported++
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s) into %q", imported, acc.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account to import into (required)")
	cmd.Flags().StringVar(&category, "category", "", "override the category of every imported transaction")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

type importedTransaction struct {
	file string
	txn  model.Transaction
}
