package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pocketbook/pocketbook/internal/model"
)

// categoriesPage lists the three category sets side by side with usage
// counts from the register.
type categoriesPage struct {
	snap  *Snapshot
	theme Theme
}

func newCategoriesPage(snap *Snapshot, theme Theme) *categoriesPage {
	return &categoriesPage{snap: snap, theme: theme}
}

func (p *categoriesPage) ID() string    { return "categories" }
func (p *categoriesPage) Title() string { return "Categories" }

func (p *categoriesPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }

func (p *categoriesPage) View(int) string {
	var b strings.Builder

	sections := []struct {
		title string
		typ   model.TransactionType
		names []string
	}{
		{"Income", model.TypeIncome, p.snap.Categories.Income},
		{"Expense", model.TypeExpense, p.snap.Categories.Expense},
		{"Transfer", model.TypeTransfer, p.snap.Categories.Transfer},
	}

	for _, section := range sections {
		b.WriteString(p.theme.Title.Render(section.title) + "\n")
		if len(section.names) == 0 {
			b.WriteString(p.theme.Subtle.Render("  (none)") + "\n")
		}
		for _, name := range section.names {
			count := p.usage(section.typ, name)
			if count > 0 {
				fmt.Fprintf(&b, "  %-24s %s\n", name,
					p.theme.Subtle.Render(fmt.Sprintf("%d transaction(s)", count)))
			} else {
				fmt.Fprintf(&b, "  %s\n", name)
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (p *categoriesPage) usage(typ model.TransactionType, name string) int {
	count := 0
	for i := range p.snap.Transactions {
		t := &p.snap.Transactions[i]
		if t.Type == typ && t.Category == name {
			count++
		}
	}
	return count
}
