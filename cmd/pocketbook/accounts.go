package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/report"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  `List, add, update, and delete the accounts money moves through.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			accounts, err := l.Accounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts yet. Use 'pocketbook accounts add' to create one."))
				return nil
			}

			code, err := displayCurrency(ctx, l)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Balance"),
				cli.HeaderStyle.Render("Bank"))

			for i := range accounts {
				acc := &accounts[i]
				bank := acc.BankName
				if acc.LastFour != "" {
					bank = strings.TrimSpace(bank + " ••••" + acc.LastFour)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(acc.ID), acc.Name, acc.Type,
					currency.Format(acc.Balance, code), bank)
			}
			fmt.Fprintf(w, "\t%s\t\t%s\t\n",
				cli.HeaderStyle.Render("Total"),
				currency.Format(report.TotalBalance(accounts), code))

			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		accountType string
		balance     string
		description string
		bankName    string
		lastFour    string
		expiry      string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Long: `Create an account with an opening balance. Known types: ` +
			strings.Join(model.AccountTypes, ", ") + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opening, err := parseAmount(balance)
			if err != nil {
				return err
			}

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := l.CreateAccount(ctx, model.Account{
				Name:        args[0],
				Type:        accountType,
				Balance:     opening,
				Description: description,
				BankName:    bankName,
				LastFour:    lastFour,
				Expiry:      expiry,
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created account %q (ID: %s)", created.Name, shortID(created.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", model.AccountCash, "account type")
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&bankName, "bank", "", "bank name")
	cmd.Flags().StringVar(&lastFour, "last-four", "", "last four digits of the card")
	cmd.Flags().StringVar(&expiry, "expiry", "", "card expiry (MM/YY)")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		description string
		bankName    string
		lastFour    string
		expiry      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Long:  `Change an account's details. The balance is not editable; it follows the ledger.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			acc, err := resolveAccount(ctx, l, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				acc.Name = name
			}
			if cmd.Flags().Changed("type") {
				acc.Type = accountType
			}
			if cmd.Flags().Changed("description") {
				acc.Description = description
			}
			if cmd.Flags().Changed("bank") {
				acc.BankName = bankName
			}
			if cmd.Flags().Changed("last-four") {
				acc.LastFour = lastFour
			}
			if cmd.Flags().Changed("expiry") {
				acc.Expiry = expiry
			}

			if err := l.UpdateAccount(ctx, *acc); err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated account %q", acc.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&bankName, "bank", "", "bank name")
	cmd.Flags().StringVar(&lastFour, "last-four", "", "last four digits of the card")
	cmd.Flags().StringVar(&expiry, "expiry", "", "card expiry (MM/YY)")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account and its transactions",
		Long: `Delete an account. Every transaction referencing it is removed as well,
and transfers with a surviving counterparty have their effect on that
account reversed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			acc, err := resolveAccount(ctx, l, args[0])
			if err != nil {
				return err
			}

			usage, err := l.AccountUsage(ctx, acc.ID)
			if err != nil {
				return err
			}

			if !force {
				prompt := fmt.Sprintf("Delete account %q and its %d transaction(s)?", acc.Name, usage)
				if !cli.Confirm(os.Stdout, os.Stdin, prompt) {
					fmt.Println(cli.InfoStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := l.DeleteAccount(ctx, acc.ID); err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted account %q (%d transaction(s) removed)", acc.Name, usage)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}

// parseAmount parses a decimal amount from a flag value.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// shortID truncates a UUID for display; list output stays readable and every
// command accepts the prefix back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
