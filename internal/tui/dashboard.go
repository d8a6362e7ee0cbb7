package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/report"
)

// dashboardPage shows the monthly summary: totals, balances, recent
// activity, and budget standing.
type dashboardPage struct {
	snap  *Snapshot
	theme Theme
}

func newDashboardPage(snap *Snapshot, theme Theme) *dashboardPage {
	return &dashboardPage{snap: snap, theme: theme}
}

func (p *dashboardPage) ID() string    { return "dashboard" }
func (p *dashboardPage) Title() string { return "Dashboard" }

func (p *dashboardPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }

func (p *dashboardPage) View(int) string {
	var b strings.Builder
	s := p.snap.Summary
	code := p.snap.Settings.Currency

	fmt.Fprintf(&b, "%s  %s\n\n",
		p.theme.Title.Render("This Month"),
		p.theme.Subtle.Render(fmt.Sprintf("%s – %s", s.Range.Start, s.Range.End)))

	fmt.Fprintf(&b, "%s %s    %s %s    %s %s\n\n",
		p.theme.Label.Render("Income:"),
		p.theme.Positive.Render(currency.Format(s.Income, code)),
		p.theme.Label.Render("Expenses:"),
		p.theme.Negative.Render(currency.Format(s.Expenses, code)),
		p.theme.Label.Render("Net:"),
		signedStyle(p.theme, s.Net.Sign()).Render(currency.Format(s.Net, code)))

	b.WriteString(p.theme.Title.Render("Accounts") + "\n")
	if len(s.Accounts) == 0 {
		b.WriteString(p.theme.Subtle.Render("No accounts set up yet") + "\n")
	}
	for _, acc := range s.Accounts {
		fmt.Fprintf(&b, "  %-24s %s\n",
			acc.Name,
			signedStyle(p.theme, acc.Balance.Sign()).Render(currency.Format(acc.Balance, code)))
	}
	fmt.Fprintf(&b, "  %-24s %s\n\n",
		p.theme.Label.Render("Total"),
		p.theme.Value.Render(currency.Format(report.TotalBalance(s.Accounts), code)))

	b.WriteString(p.theme.Title.Render("Recent Transactions") + "\n")
	if len(s.Recent) == 0 {
		b.WriteString(p.theme.Subtle.Render("No transactions yet") + "\n")
	}
	for i := range s.Recent {
		t := &s.Recent[i]
		fmt.Fprintf(&b, "  %s  %-28s %-16s %s\n",
			t.Date, truncate(t.Description, 28), t.Category,
			amountStyle(p.theme, t).Render(currency.Format(t.Amount, code)))
	}

	if len(s.Budgets) > 0 {
		b.WriteString("\n" + p.theme.Title.Render("Budgets") + "\n")
		for _, bs := range s.Budgets {
			fmt.Fprintf(&b, "  %-20s %s / %s  %s\n",
				bs.Budget.Category,
				currency.Format(bs.Spent, code),
				currency.Format(bs.Budget.Amount, code),
				stateStyle(p.theme, bs.State).Render(string(bs.State)))
		}
	}

	return b.String()
}

func signedStyle(theme Theme, sign int) lipgloss.Style {
	if sign < 0 {
		return theme.Negative
	}
	return theme.Positive
}

func stateStyle(theme Theme, state report.BudgetState) lipgloss.Style {
	switch state {
	case report.OverBudget:
		return theme.Negative
	case report.NearLimit:
		return theme.Warning
	default:
		return theme.Positive
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
