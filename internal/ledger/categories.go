package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/model"
)

// Categories returns the current category set.
func (l *Ledger) Categories(ctx context.Context) (model.CategorySet, error) {
	return l.store.Categories(ctx)
}

// AddCategory appends a unique name to the set for the given type.
func (l *Ledger) AddCategory(ctx context.Context, t model.TransactionType, name string) error {
	set, err := l.store.Categories(ctx)
	if err != nil {
		return err
	}
	if err := set.Add(t, name); err != nil {
		return err
	}
	return l.store.SaveCategories(ctx, set)
}

// RenameCategory moves a category to a new name and/or type. It fails when
// the target already exists in the destination set. Transactions and budgets
// that reference the old name are deliberately left untouched; only delete
// is guarded by reference checks, so renames are how historical names end up
// orphaned.
func (l *Ledger) RenameCategory(ctx context.Context, oldType model.TransactionType, oldName string, newType model.TransactionType, newName string) error {
	set, err := l.store.Categories(ctx)
	if err != nil {
		return err
	}
	if !set.Contains(oldType, oldName) {
		return fmt.Errorf("%w: category %q under %s", common.ErrNotFound, oldName, oldType)
	}
	if set.Contains(newType, newName) {
		return fmt.Errorf("%w: category %q already exists for %s", common.ErrDuplicateEntry, newName, newType)
	}

	if err := set.Remove(oldType, oldName); err != nil {
		return err
	}
	if err := set.Add(newType, newName); err != nil {
		return err
	}

	if err := l.store.SaveCategories(ctx, set); err != nil {
		return err
	}
	slog.Info("renamed category", "from", oldName, "to", newName, "type", newType)
	return nil
}

// CategoryUsage counts the transactions and budgets referencing a category
// name.
func (l *Ledger) CategoryUsage(ctx context.Context, name string) (txns, budgets int, err error) {
	allTxns, err := l.store.Transactions(ctx)
	if err != nil {
		return 0, 0, err
	}
	for i := range allTxns {
		if allTxns[i].Category == name {
			txns++
		}
	}

	allBudgets, err := l.store.Budgets(ctx)
	if err != nil {
		return 0, 0, err
	}
	for i := range allBudgets {
		if allBudgets[i].Category == name {
			budgets++
		}
	}
	return txns, budgets, nil
}

// DeleteCategory removes a category name. The operation is refused outright
// while any transaction or budget references the name.
func (l *Ledger) DeleteCategory(ctx context.Context, t model.TransactionType, name string) error {
	txns, budgets, err := l.CategoryUsage(ctx, name)
	if err != nil {
		return err
	}
	if txns > 0 || budgets > 0 {
		return &common.ReferenceError{
			Err:          common.ErrCategoryInUse,
			Subject:      fmt.Sprintf("category %q", name),
			Transactions: txns,
			Budgets:      budgets,
		}
	}

	set, err := l.store.Categories(ctx)
	if err != nil {
		return err
	}
	if err := set.Remove(t, name); err != nil {
		return err
	}
	return l.store.SaveCategories(ctx, set)
}
