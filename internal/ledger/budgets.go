package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
)

// Budgets returns all budgets.
func (l *Ledger) Budgets(ctx context.Context) ([]model.Budget, error) {
	return l.store.Budgets(ctx)
}

// FindBudget returns the budget for a (category, period) pair, or nil.
func (l *Ledger) FindBudget(ctx context.Context, category string, period dates.Period) (*model.Budget, error) {
	budgets, err := l.store.Budgets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		if budgets[i].Category == category && budgets[i].Period == period {
			return &budgets[i], nil
		}
	}
	return nil, nil
}

// SetBudget creates a budget, or replaces the existing one for the same
// (category, period) when replace is set. Without replace, a collision is
// reported as ErrBudgetExists so the caller can ask the user before
// overwriting.
func (l *Ledger) SetBudget(ctx context.Context, budget model.Budget, replace bool) (*model.Budget, error) {
	if budget.ID == "" {
		budget.ID = uuid.NewString()
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	categories, err := l.store.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if !categories.Contains(model.TypeExpense, budget.Category) {
		return nil, fmt.Errorf("%w: %q is not an expense category", common.ErrUnknownCategory, budget.Category)
	}

	budgets, err := l.store.Budgets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		if budgets[i].Category == budget.Category && budgets[i].Period == budget.Period {
			if !replace {
				return nil, fmt.Errorf("%w: %s/%s", common.ErrBudgetExists, budget.Category, budget.Period)
			}
			budgets = append(budgets[:i], budgets[i+1:]...)
			break
		}
	}
	budgets = append(budgets, budget)

	if err := l.store.SaveBudgets(ctx, budgets); err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteBudget removes a budget by id.
func (l *Ledger) DeleteBudget(ctx context.Context, id string) error {
	budgets, err := l.store.Budgets(ctx)
	if err != nil {
		return err
	}
	for i := range budgets {
		if budgets[i].ID == id {
			budgets = append(budgets[:i], budgets[i+1:]...)
			return l.store.SaveBudgets(ctx, budgets)
		}
	}
	return fmt.Errorf("%w: budget %s", common.ErrNotFound, id)
}
