package model

import (
	"fmt"
	"slices"

	"github.com/pocketbook/pocketbook/internal/common"
)

// CategorySet holds the category names available for each transaction type.
type CategorySet struct {
	Income   []string `json:"income"`
	Expense  []string `json:"expense"`
	Transfer []string `json:"transfer"`
}

// DefaultCategorySet returns the seed categories a fresh ledger starts with.
func DefaultCategorySet() CategorySet {
	return CategorySet{
		Income: []string{
			"Salary", "Freelance", "Investment", "Gift", "Business",
			"Bonus", "Dividend", "Rental Income", "Other",
		},
		Expense: []string{
			"Food", "Transport", "Entertainment", "Utilities", "Rent",
			"Healthcare", "Education", "Shopping", "Travel", "Personal Care",
			"Insurance", "Taxes", "Subscriptions", "Maintenance", "Charity",
			"Other",
		},
		Transfer: []string{
			"Cash to Bank", "Bank to Card", "Card to Cash", "Between Accounts",
			"Credit Card Payment", "Bank Transfer", "Investment Transfer",
			"Loan Payment",
		},
	}
}

// Names returns the category names for a transaction type. The returned
// slice is the set's backing storage; callers must not mutate it.
func (c *CategorySet) Names(t TransactionType) []string {
	switch t {
	case TypeIncome:
		return c.Income
	case TypeExpense:
		return c.Expense
	case TypeTransfer:
		return c.Transfer
	}
	return nil
}

// Contains reports whether the set holds name under the given type.
func (c *CategorySet) Contains(t TransactionType, name string) bool {
	return slices.Contains(c.Names(t), name)
}

// ContainsAny reports whether name appears under any type.
func (c *CategorySet) ContainsAny(name string) bool {
	return c.Contains(TypeIncome, name) ||
		c.Contains(TypeExpense, name) ||
		c.Contains(TypeTransfer, name)
}

// Add appends a unique name to the set for the given type.
func (c *CategorySet) Add(t TransactionType, name string) error {
	if !ValidTransactionType(t) {
		return fmt.Errorf("%w: unknown category type %q", common.ErrValidation, t)
	}
	if name == "" {
		return fmt.Errorf("%w: missing category name", common.ErrValidation)
	}
	if c.Contains(t, name) {
		return fmt.Errorf("%w: category %q already exists for %s", common.ErrDuplicateEntry, name, t)
	}
	switch t {
	case TypeIncome:
		c.Income = append(c.Income, name)
	case TypeExpense:
		c.Expense = append(c.Expense, name)
	case TypeTransfer:
		c.Transfer = append(c.Transfer, name)
	}
	return nil
}

// Remove deletes name from the set for the given type.
func (c *CategorySet) Remove(t TransactionType, name string) error {
	names := c.Names(t)
	i := slices.Index(names, name)
	if i < 0 {
		return fmt.Errorf("%w: category %q under %s", common.ErrNotFound, name, t)
	}
	switch t {
	case TypeIncome:
		c.Income = slices.Delete(c.Income, i, i+1)
	case TypeExpense:
		c.Expense = slices.Delete(c.Expense, i, i+1)
	case TypeTransfer:
		c.Transfer = slices.Delete(c.Transfer, i, i+1)
	}
	return nil
}
