package tui

import (
	"context"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/ledger"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/report"
)

// Snapshot is the read-only view of the ledger the pages render. The TUI
// loads one at startup and on explicit refresh; mutations happen through
// the CLI commands.
type Snapshot struct {
	Settings     model.Settings
	Accounts     []model.Account
	AccountsByID map[string]model.Account
	Transactions []model.Transaction
	Budgets      []model.Budget
	Categories   model.CategorySet
	Summary      report.Summary
	Today        dates.Date
}

// LoadSnapshot reads everything the pages need in one pass. The summary
// covers the current month.
func LoadSnapshot(ctx context.Context, l *ledger.Ledger) (*Snapshot, error) {
	settings, err := l.Store().Settings(ctx)
	if err != nil {
		return nil, err
	}
	byID, err := l.Store().Accounts(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := l.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := l.Transactions(ctx, ledger.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	budgets, err := l.Budgets(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := l.Categories(ctx)
	if err != nil {
		return nil, err
	}

	today := dates.Today(settings.Location())
	monthly := dates.Resolve(dates.PeriodMonthly, today, nil, nil)

	return &Snapshot{
		Settings:     settings,
		Accounts:     accounts,
		AccountsByID: byID,
		Transactions: txns,
		Budgets:      budgets,
		Categories:   categories,
		Summary:      report.Summarize(txns, byID, budgets, monthly, today),
		Today:        today,
	}, nil
}

// AccountName resolves an account id for display.
func (s *Snapshot) AccountName(id string) string {
	if acc, ok := s.AccountsByID[id]; ok {
		return acc.Name
	}
	return "Unknown Account"
}
