package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/report"
)

func dashboardCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial summary for a period",
		Long: `Summarize the period: income, expenses, net, account balances, recent
transactions, and budget standing. Transfers move money between accounts
and count toward neither income nor expenses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			now, err := today(ctx, l)
			if err != nil {
				return err
			}
			r := dates.Resolve(dates.Period(period), now, nil, nil)

			txns, err := l.Store().Transactions(ctx)
			if err != nil {
				return err
			}
			accounts, err := l.Store().Accounts(ctx)
			if err != nil {
				return err
			}
			budgets, err := l.Budgets(ctx)
			if err != nil {
				return err
			}
			code, err := displayCurrency(ctx, l)
			if err != nil {
				return err
			}

			s := report.Summarize(txns, accounts, budgets, r, now)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Summary %s – %s", s.Range.Start, s.Range.End)))
			fmt.Printf("  Income:   %s\n", cli.PositiveStyle.Render(currency.Format(s.Income, code)))
			fmt.Printf("  Expenses: %s\n", cli.NegativeStyle.Render(currency.Format(s.Expenses, code)))
			fmt.Printf("  Net:      %s\n\n", currency.FormatSigned(s.Net, code))

			fmt.Println(cli.FormatTitle("Accounts"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for i := range s.Accounts {
				acc := &s.Accounts[i]
				fmt.Fprintf(w, "  %s\t%s\n", acc.Name, currency.Format(acc.Balance, code))
			}
			fmt.Fprintf(w, "  %s\t%s\n",
				cli.HeaderStyle.Render("Total"),
				currency.Format(report.TotalBalance(s.Accounts), code))
			w.Flush()

			if len(s.Recent) > 0 {
				fmt.Println()
				fmt.Println(cli.FormatTitle("Recent Transactions"))
				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for i := range s.Recent {
					t := &s.Recent[i]
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
						t.Date, t.Category, t.Description,
						currency.Format(t.Amount, code))
				}
				w.Flush()
			}

			if len(s.Budgets) > 0 {
				fmt.Println()
				fmt.Println(cli.FormatTitle("Budgets"))
				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, bs := range s.Budgets {
					fmt.Fprintf(w, "  %s\t%s / %s\t%s%%\t%s\n",
						bs.Budget.Category,
						currency.Format(bs.Spent, code),
						currency.Format(bs.Budget.Amount, code),
						bs.Utilization.StringFixed(0),
						budgetStateLabel(bs.State))
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", string(dates.PeriodMonthly), "summary period (daily, weekly, monthly, yearly)")

	return cmd
}
