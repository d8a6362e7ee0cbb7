package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/report"
)

const budgetBarWidth = 24

// budgetsPage shows each budget with its spend for the current period
// and a utilization bar.
type budgetsPage struct {
	snap  *Snapshot
	theme Theme
}

func newBudgetsPage(snap *Snapshot, theme Theme) *budgetsPage {
	return &budgetsPage{snap: snap, theme: theme}
}

func (p *budgetsPage) ID() string    { return "budgets" }
func (p *budgetsPage) Title() string { return "Budgets" }

func (p *budgetsPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }

func (p *budgetsPage) View(int) string {
	if len(p.snap.Budgets) == 0 {
		return p.theme.Subtle.Render("No budgets configured yet")
	}

	var b strings.Builder
	code := p.snap.Settings.Currency

	for _, budget := range p.snap.Budgets {
		status := report.Status(budget, p.snap.Transactions, p.snap.Today)
		style := stateStyle(p.theme, status.State)

		fmt.Fprintf(&b, "%s  %s\n",
			p.theme.Title.Render(budget.Category),
			p.theme.Subtle.Render(string(budget.Period)))
		fmt.Fprintf(&b, "  %s %s\n",
			utilizationBar(status.Utilization.IntPart()),
			style.Render(fmt.Sprintf("%s%%", status.Utilization.StringFixed(0))))
		fmt.Fprintf(&b, "  %s %s of %s, %s remaining  %s\n\n",
			p.theme.Label.Render("Spent:"),
			currency.Format(status.Spent, code),
			currency.Format(budget.Amount, code),
			currency.Format(status.Remaining, code),
			style.Render(string(status.State)))
	}

	return b.String()
}

func utilizationBar(percent int64) string {
	filled := int(percent) * budgetBarWidth / 100
	if filled > budgetBarWidth {
		filled = budgetBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", budgetBarWidth-filled) + "]"
}
