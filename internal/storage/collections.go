package storage

import (
	"context"

	"github.com/pocketbook/pocketbook/internal/model"
)

// Typed accessors for each persisted collection. Every accessor follows the
// load-with-default contract: a missing key yields the documented default,
// never an error. Saves overwrite the whole collection.

// Accounts returns the account collection, keyed by account ID.
func (s *Store) Accounts(ctx context.Context) (map[string]model.Account, error) {
	return loadAccounts(ctx, s.db)
}

// SaveAccounts replaces the account collection.
func (s *Store) SaveAccounts(ctx context.Context, accounts map[string]model.Account) error {
	return save(ctx, s.db, KeyAccounts, accounts)
}

// Transactions returns the transaction list in insertion order.
func (s *Store) Transactions(ctx context.Context) ([]model.Transaction, error) {
	return loadTransactions(ctx, s.db)
}

// SaveTransactions replaces the transaction list.
func (s *Store) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	return save(ctx, s.db, KeyTransactions, txns)
}

// Budgets returns the budget list.
func (s *Store) Budgets(ctx context.Context) ([]model.Budget, error) {
	return loadBudgets(ctx, s.db)
}

// SaveBudgets replaces the budget list.
func (s *Store) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	return save(ctx, s.db, KeyBudgets, budgets)
}

// Categories returns the category set, seeded with the defaults on first
// use.
func (s *Store) Categories(ctx context.Context) (model.CategorySet, error) {
	return loadCategories(ctx, s.db)
}

// SaveCategories replaces the category set.
func (s *Store) SaveCategories(ctx context.Context, set model.CategorySet) error {
	return save(ctx, s.db, KeyCategories, set)
}

// Settings returns the settings record, or the defaults when none has been
// saved yet.
func (s *Store) Settings(ctx context.Context) (model.Settings, error) {
	return loadSettings(ctx, s.db)
}

// SaveSettings replaces the settings record.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	return save(ctx, s.db, KeySettings, settings)
}

// The same accessors inside a transaction.

// Accounts returns the account collection as seen by the transaction.
func (t *Tx) Accounts(ctx context.Context) (map[string]model.Account, error) {
	return loadAccounts(ctx, t.tx)
}

// SaveAccounts replaces the account collection within the transaction.
func (t *Tx) SaveAccounts(ctx context.Context, accounts map[string]model.Account) error {
	return save(ctx, t.tx, KeyAccounts, accounts)
}

// Transactions returns the transaction list as seen by the transaction.
func (t *Tx) Transactions(ctx context.Context) ([]model.Transaction, error) {
	return loadTransactions(ctx, t.tx)
}

// SaveTransactions replaces the transaction list within the transaction.
func (t *Tx) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	return save(ctx, t.tx, KeyTransactions, txns)
}

// Budgets returns the budget list as seen by the transaction.
func (t *Tx) Budgets(ctx context.Context) ([]model.Budget, error) {
	return loadBudgets(ctx, t.tx)
}

// SaveBudgets replaces the budget list within the transaction.
func (t *Tx) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	return save(ctx, t.tx, KeyBudgets, budgets)
}

// Categories returns the category set as seen by the transaction.
func (t *Tx) Categories(ctx context.Context) (model.CategorySet, error) {
	return loadCategories(ctx, t.tx)
}

// SaveCategories replaces the category set within the transaction.
func (t *Tx) SaveCategories(ctx context.Context, set model.CategorySet) error {
	return save(ctx, t.tx, KeyCategories, set)
}

func loadAccounts(ctx context.Context, q querier) (map[string]model.Account, error) {
	accounts := make(map[string]model.Account)
	if _, err := load(ctx, q, KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func loadTransactions(ctx context.Context, q querier) ([]model.Transaction, error) {
	var txns []model.Transaction
	if _, err := load(ctx, q, KeyTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func loadBudgets(ctx context.Context, q querier) ([]model.Budget, error) {
	var budgets []model.Budget
	if _, err := load(ctx, q, KeyBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func loadCategories(ctx context.Context, q querier) (model.CategorySet, error) {
	var set model.CategorySet
	found, err := load(ctx, q, KeyCategories, &set)
	if err != nil {
		return model.CategorySet{}, err
	}
	if !found {
		return model.DefaultCategorySet(), nil
	}
	return set, nil
}

func loadSettings(ctx context.Context, q querier) (model.Settings, error) {
	settings := model.DefaultSettings()
	if _, err := load(ctx, q, KeySettings, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
