package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/ledger"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/report"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage spending budgets",
		Long:  `Set per-category spending limits and see how this period's spend tracks against them.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with current-period spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := l.Budgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets yet. Use 'pocketbook budgets set' to create one."))
				return nil
			}

			txns, err := l.Transactions(ctx, ledger.TransactionFilter{})
			if err != nil {
				return err
			}
			now, err := today(ctx, l)
			if err != nil {
				return err
			}
			code, err := displayCurrency(ctx, l)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Period"),
				cli.HeaderStyle.Render("Limit"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Used"),
				cli.HeaderStyle.Render("Status"))

			for _, budget := range budgets {
				status := report.Status(budget, txns, now)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%%\t%s\n",
					shortID(budget.ID), budget.Category, budget.Period,
					currency.Format(budget.Amount, code),
					currency.Format(status.Spent, code),
					status.Utilization.StringFixed(0),
					budgetStateLabel(status.State))
			}

			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	var (
		period  string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set a budget for an expense category",
		Long: `Set a spending limit for an expense category and period. Setting a budget
for a (category, period) pair that already has one asks before replacing it.`,
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

			budget := model.Budget{
				Category: args[0],
				Amount:   amount,
				Period:   dates.Period(period),
			}

			created, err := l.SetBudget(ctx, budget, replace)
			if errors.Is(err, common.ErrBudgetExists) && !replace {
				prompt := fmt.Sprintf("A %s budget for %q already exists. Replace it?", period, args[0])
				if !cli.Confirm(os.Stdout, os.Stdin, prompt) {
					fmt.Println(cli.InfoStyle.Render("Cancelled."))
					return nil
				}
				created, err = l.SetBudget(ctx, budget, true)
			}
			if err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			code, err := displayCurrency(ctx, l)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set %s budget of %s for %q",
				created.Period, currency.Format(created.Amount, code), created.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", string(dates.PeriodMonthly), "budget period (weekly, monthly, yearly)")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace an existing budget without asking")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := l.Budgets(ctx)
			if err != nil {
				return err
			}
			id := args[0]
			for _, b := range budgets {
				if b.ID == args[0] || strings.HasPrefix(b.ID, args[0]) {
					id = b.ID
					break
				}
			}

			if err := l.DeleteBudget(ctx, id); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Deleted budget"))
			return nil
		},
	}
}

func budgetStateLabel(state report.BudgetState) string {
	switch state {
	case report.OverBudget:
		return cli.NegativeStyle.Render(string(state))
	case report.NearLimit:
		return cli.WarningStyle.Render(string(state))
	default:
		return cli.PositiveStyle.Render(string(state))
	}
}
