package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pocketbook/pocketbook/internal/currency"
	"github.com/pocketbook/pocketbook/internal/report"
)

// accountsPage lists every account with its running balance.
type accountsPage struct {
	snap  *Snapshot
	theme Theme
}

func newAccountsPage(snap *Snapshot, theme Theme) *accountsPage {
	return &accountsPage{snap: snap, theme: theme}
}

func (p *accountsPage) ID() string    { return "accounts" }
func (p *accountsPage) Title() string { return "Accounts" }

func (p *accountsPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }

func (p *accountsPage) View(int) string {
	if len(p.snap.Accounts) == 0 {
		return p.theme.Subtle.Render("No accounts set up yet")
	}

	var b strings.Builder
	code := p.snap.Settings.Currency

	for i := range p.snap.Accounts {
		acc := &p.snap.Accounts[i]
		fmt.Fprintf(&b, "%s  %s\n",
			p.theme.Title.Render(acc.Name),
			p.theme.Subtle.Render(acc.Type))
		fmt.Fprintf(&b, "  %s %s\n",
			p.theme.Label.Render("Balance:"),
			signedStyle(p.theme, acc.Balance.Sign()).Render(currency.Format(acc.Balance, code)))
		if acc.BankName != "" {
			fmt.Fprintf(&b, "  %s %s\n", p.theme.Label.Render("Bank:"), acc.BankName)
		}
		if acc.LastFour != "" {
			fmt.Fprintf(&b, "  %s •••• %s\n", p.theme.Label.Render("Card:"), acc.LastFour)
		}
		if acc.Description != "" {
			fmt.Fprintf(&b, "  %s\n", p.theme.Subtle.Render(acc.Description))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s\n",
		p.theme.Label.Render("Total balance:"),
		p.theme.Value.Render(currency.Format(report.TotalBalance(p.snap.Accounts), code)))

	return b.String()
}
