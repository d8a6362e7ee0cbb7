package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// ExportJSON writes the current value of a key to w as indented JSON.
func ExportJSON(ctx context.Context, store *storage.Store, key string, w io.Writer) error {
	value, err := loadValue(ctx, store, key)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("failed to export %q: %w", key, err)
	}
	return nil
}

// ImportJSON parses r as the JSON form of a key's collection and replaces
// the stored value. The input is parsed in full before anything is written,
// so a malformed file leaves the prior state untouched.
func ImportJSON(ctx context.Context, store *storage.Store, key string, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	switch key {
	case storage.KeyAccounts:
		var accounts map[string]model.Account
		if err := json.Unmarshal(raw, &accounts); err != nil {
			return fmt.Errorf("%w: %v", common.ErrMalformedImport, err)
		}
		return store.SaveAccounts(ctx, accounts)
	case storage.KeyTransactions:
		var txns []model.Transaction
		if err := json.Unmarshal(raw, &txns); err != nil {
			return fmt.Errorf("%w: %v", common.ErrMalformedImport, err)
		}
		return store.SaveTransactions(ctx, txns)
	case storage.KeyBudgets:
		var budgets []model.Budget
		if err := json.Unmarshal(raw, &budgets); err != nil {
			return fmt.Errorf("%w: %v", common.ErrMalformedImport, err)
		}
		return store.SaveBudgets(ctx, budgets)
	case storage.KeyCategories:
		var set model.CategorySet
		if err := json.Unmarshal(raw, &set); err != nil {
			return fmt.Errorf("%w: %v", common.ErrMalformedImport, err)
		}
		return store.SaveCategories(ctx, set)
	case storage.KeySettings:
		var settings model.Settings
		if err := json.Unmarshal(raw, &settings); err != nil {
			return fmt.Errorf("%w: %v", common.ErrMalformedImport, err)
		}
		return store.SaveSettings(ctx, settings)
	}
	return fmt.Errorf("%w: %s", common.ErrUnknownDataKey, key)
}

// loadValue fetches a key's collection (with defaults applied) for export.
func loadValue(ctx context.Context, store *storage.Store, key string) (any, error) {
	switch key {
	case storage.KeyAccounts:
		return store.Accounts(ctx)
	case storage.KeyTransactions:
		return store.Transactions(ctx)
	case storage.KeyBudgets:
		return store.Budgets(ctx)
	case storage.KeyCategories:
		return store.Categories(ctx)
	case storage.KeySettings:
		return store.Settings(ctx)
	}
	return nil, fmt.Errorf("%w: %s", common.ErrUnknownDataKey, key)
}
