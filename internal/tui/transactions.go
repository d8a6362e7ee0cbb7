package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/model"
)

// transactionsPage lists the full register newest-first in a scrollable
// table.
type transactionsPage struct {
	snap  *Snapshot
	theme Theme
	table table.Model
}

func newTransactionsPage(snap *Snapshot, theme Theme) *transactionsPage {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Description", Width: 28},
		{Title: "Account", Width: 18},
		{Title: "Amount", Width: 14},
	}

	rows := make([]table.Row, 0, len(snap.Transactions))
	for i := range snap.Transactions {
		t := &snap.Transactions[i]
		account := snap.AccountName(t.AccountID)
		if t.Type == model.TypeTransfer {
			account += " → " + snap.AccountName(t.ToAccountID)
		}
		rows = append(rows, table.Row{
			t.Date.String(),
			string(t.Type),
			t.Category,
			t.Description,
			account,
			currency.Format(t.Amount, snap.Settings.Currency),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected
	tbl.SetStyles(styles)

	return &transactionsPage{snap: snap, theme: theme, table: tbl}
}

func (p *transactionsPage) ID() string    { return "transactions" }
func (p *transactionsPage) Title() string { return "Transactions" }

func (p *transactionsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *transactionsPage) View(int) string {
	if len(p.snap.Transactions) == 0 {
		return p.theme.Subtle.Render("No transactions recorded yet")
	}
	return p.table.View()
}

func amountStyle(theme Theme, t *model.Transaction) lipgloss.Style {
	switch t.Type {
	case model.TypeIncome:
		return theme.Positive
	case model.TypeExpense:
		return theme.Negative
	default:
		return theme.Value
	}
}
