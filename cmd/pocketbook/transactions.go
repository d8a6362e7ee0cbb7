package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/ledger"
	"github.com/pocketbook/pocketbook/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long: `Record, list, edit, and delete transactions. Every mutation keeps account
balances consistent: adding applies the transaction's effect, deleting
reverses it, and editing reverses the old version before applying the new.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		txType   string
		category string
		period   string
		fromDate string
		toDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			filter := ledger.TransactionFilter{
				Type:     model.TransactionType(txType),
				Category: category,
			}
			if period != "" || fromDate != "" || toDate != "" {
				r, err := resolveRange(ctx, l, period, fromDate, toDate)
				if err != nil {
					return err
				}
				filter.Range = &r
			}

			txns, err := l.Transactions(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			code, err := displayCurrency(ctx, l)
			if err != nil {
				return err
			}
			accounts, err := l.Store().Accounts(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Account"),
				cli.HeaderStyle.Render("Amount"))

			for i := range txns {
				t := &txns[i]
				account := accountLabel(accounts, t)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(t.ID), t.Date, t.Type, t.Category,
					t.Description, account,
					currency.Format(t.Amount, code))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income, expense, transfer)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&period, "period", "", "filter by period (daily, weekly, monthly, yearly)")
	cmd.Flags().StringVar(&fromDate, "from", "", "filter start date (inclusive)")
	cmd.Flags().StringVar(&toDate, "to", "", "filter end date (inclusive)")

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		category    string
		account     string
		toAccount   string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add <type> <amount>",
		Short: "Record a transaction",
		Long: `Record an income, expense, or transfer. Income credits the account,
expense debits it, and a transfer moves the amount between two accounts.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			src, err := resolveAccount(ctx, l, account)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				Type:        model.TransactionType(args[0]),
				Category:    category,
				Amount:      amount,
				Description: description,
				AccountID:   src.ID,
			}
			if toAccount != "" {
				dst, err := resolveAccount(ctx, l, toAccount)
				if err != nil {
					return err
				}
				txn.ToAccountID = dst.ID
			}

			if date == "" {
				txn.Date, err = today(ctx, l)
			} else {
				txn.Date, err = dates.Parse(date)
			}
			if err != nil {
				return err
			}

			created, err := l.AddTransaction(ctx, txn)
			if err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			code, err := displayCurrency(ctx, l)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (ID: %s)",
				created.Type, currency.Format(created.Amount, code), shortID(created.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "transaction category (required)")
	cmd.Flags().StringVar(&account, "account", "", "source account id or name (required)")
	cmd.Flags().StringVar(&toAccount, "to", "", "destination account for transfers")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (default: today)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func editTransactionCmd() *cobra.Command {
	var (
		txType      string
		amount      string
		category    string
		account     string
		toAccount   string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Edit a recorded transaction. The stored version's balance effect is
reversed before the edited version is applied, so balances never drift.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := resolveTransaction(ctx, l, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("type") {
				txn.Type = model.TransactionType(txType)
				if txn.Type != model.TypeTransfer {
					txn.ToAccountID = ""
				}
			}
			if cmd.Flags().Changed("amount") {
				txn.Amount, err = parseAmount(amount)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				txn.Category = category
			}
			if cmd.Flags().Changed("account") {
				src, err := resolveAccount(ctx, l, account)
				if err != nil {
					return err
				}
				txn.AccountID = src.ID
			}
			if cmd.Flags().Changed("to") {
				dst, err := resolveAccount(ctx, l, toAccount)
				if err != nil {
					return err
				}
				txn.ToAccountID = dst.ID
			}
			if cmd.Flags().Changed("description") {
				txn.Description = description
			}
			if cmd.Flags().Changed("date") {
				txn.Date, err = dates.Parse(date)
				if err != nil {
					return err
				}
			}

			if err := l.UpdateTransaction(ctx, *txn); err != nil {
				return fmt.Errorf("failed to edit transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", shortID(txn.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "transaction type")
	cmd.Flags().StringVar(&amount, "amount", "", "amount")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&account, "account", "", "source account id or name")
	cmd.Flags().StringVar(&toAccount, "to", "", "destination account for transfers")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and reverse its effect on account balances.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := resolveTransaction(ctx, l, args[0])
			if err != nil {
				return err
			}

			if !force {
				prompt := fmt.Sprintf("Delete %s %q from %s?", txn.Type, txn.Description, txn.Date)
				if !cli.Confirm(os.Stdout, os.Stdin, prompt) {
					fmt.Println(cli.InfoStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := l.DeleteTransaction(ctx, txn.ID); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %s", shortID(txn.ID))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}

// resolveRange builds the date filter from the period and explicit bound
// flags. Explicit bounds force a custom range.
func resolveRange(ctx context.Context, l *ledger.Ledger, period, from, to string) (dates.Range, error) {
	now, err := today(ctx, l)
	if err != nil {
		return dates.Range{}, err
	}

	var start, end *dates.Date
	if from != "" {
		d, err := dates.Parse(from)
		if err != nil {
			return dates.Range{}, err
		}
		start = &d
	}
	if to != "" {
		d, err := dates.Parse(to)
		if err != nil {
			return dates.Range{}, err
		}
		end = &d
	}

	p := dates.Period(period)
	if start != nil || end != nil {
		p = dates.PeriodCustom
	}
	return dates.Resolve(p, now, start, end), nil
}

func accountLabel(accounts map[string]model.Account, t *model.Transaction) string {
	name := func(id string) string {
		if acc, ok := accounts[id]; ok {
			return acc.Name
		}
		return "unknown"
	}
	if t.Type == model.TypeTransfer {
		return name(t.AccountID) + " → " + name(t.ToAccountID)
	}
	return name(t.AccountID)
}
