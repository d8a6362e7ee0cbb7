package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/report"
)

func testSnapshot() *Snapshot {
	accounts := map[string]model.Account{
		"a-1": {ID: "a-1", Name: "Cash", Type: model.AccountCash, Balance: decimal.NewFromInt(800)},
		"a-2": {ID: "a-2", Name: "Bank", Type: model.AccountBank, Balance: decimal.NewFromInt(5000)},
	}
	today := dates.New(2025, time.October, 15)
	txns := []model.Transaction{
		{
			ID: "t-1", Type: model.TypeExpense, Category: "Food",
			Amount: decimal.NewFromInt(200), Description: "Groceries",
			AccountID: "a-1", Date: dates.New(2025, time.October, 10),
		},
		{
			ID: "t-2", Type: model.TypeTransfer, Category: "Between Accounts",
			Amount: decimal.NewFromInt(500), Description: "Top up",
			AccountID: "a-2", ToAccountID: "a-1", Date: dates.New(2025, time.October, 12),
		},
	}
	budgets := []model.Budget{
		{ID: "b-1", Category: "Food", Amount: decimal.NewFromInt(500), Period: dates.PeriodMonthly},
	}
	monthly := dates.Resolve(dates.PeriodMonthly, today, nil, nil)

	return &Snapshot{
		Settings:     model.DefaultSettings(),
		Accounts:     []model.Account{accounts["a-2"], accounts["a-1"]},
		AccountsByID: accounts,
		Transactions: txns,
		Budgets:      budgets,
		Categories:   model.DefaultCategorySet(),
		Summary:      report.Summarize(txns, accounts, budgets, monthly, today),
		Today:        today,
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	snap := testSnapshot()
	r := buildRegistry(snap, lightTheme())

	wantIDs := []string{"dashboard", "transactions", "accounts", "budgets", "categories"}
	gotIDs := r.IDs()
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("registry has %d pages, want %d", len(gotIDs), len(wantIDs))
	}
	for i, id := range wantIDs {
		if gotIDs[i] != id {
			t.Errorf("tab %d = %s, want %s", i, gotIDs[i], id)
		}
		if _, ok := r.Lookup(id); !ok {
			t.Errorf("Lookup(%s) failed", id)
		}
		if r.At(i).ID() != id {
			t.Errorf("At(%d).ID() = %s, want %s", i, r.At(i).ID(), id)
		}
	}
}

func TestPagesRenderSnapshotData(t *testing.T) {
	snap := testSnapshot()
	theme := lightTheme()

	tests := []struct {
		page Page
		want []string
	}{
		{page: newDashboardPage(snap, theme), want: []string{"Groceries", "Cash", "Bank"}},
		{page: newTransactionsPage(snap, theme), want: []string{"Groceries", "Bank → Cash"}},
		{page: newAccountsPage(snap, theme), want: []string{"Cash", "Bank", "Total balance"}},
		{page: newBudgetsPage(snap, theme), want: []string{"Food", "monthly"}},
		{page: newCategoriesPage(snap, theme), want: []string{"Salary", "Food", "1 transaction(s)"}},
	}

	for _, tt := range tests {
		t.Run(tt.page.ID(), func(t *testing.T) {
			view := tt.page.View(100)
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("%s view missing %q", tt.page.ID(), want)
				}
			}
		})
	}
}

func TestPagesRenderEmptySnapshot(t *testing.T) {
	snap := &Snapshot{
		Settings:     model.DefaultSettings(),
		AccountsByID: map[string]model.Account{},
		Categories:   model.CategorySet{},
		Today:        dates.New(2025, time.October, 15),
	}
	theme := darkTheme()

	for i := 0; i < buildRegistry(snap, theme).Len(); i++ {
		page := buildRegistry(snap, theme).At(i)
		if view := page.View(80); view == "" {
			t.Errorf("%s renders empty for an empty ledger", page.ID())
		}
	}
}

func TestThemeToggle(t *testing.T) {
	light := ThemeFor("light")
	if light.Name != "light" {
		t.Fatalf("ThemeFor(light).Name = %s", light.Name)
	}
	if light.Toggle().Name != "dark" {
		t.Error("light should toggle to dark")
	}
	if ThemeFor("dark").Toggle().Name != "light" {
		t.Error("dark should toggle to light")
	}
	if ThemeFor("mystery").Name != "light" {
		t.Error("unknown theme names fall back to light")
	}
}

func TestSnapshotAccountName(t *testing.T) {
	snap := testSnapshot()
	if got := snap.AccountName("a-1"); got != "Cash" {
		t.Errorf("AccountName(a-1) = %s", got)
	}
	if got := snap.AccountName("missing"); got != "Unknown Account" {
		t.Errorf("AccountName(missing) = %s, want Unknown Account", got)
	}
}

var _ tea.Model = (*App)(nil)
