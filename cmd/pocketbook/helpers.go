package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/config"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/ledger"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// initLedger opens the database, runs migrations, and wraps the store in a
// ledger. Callers must Close the returned store.
func initLedger(ctx context.Context) (*ledger.Ledger, *storage.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("could not open database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return ledger.New(store), store, nil
}

// today returns the current date in the configured timezone.
func today(ctx context.Context, l *ledger.Ledger) (dates.Date, error) {
	settings, err := l.Store().Settings(ctx)
	if err != nil {
		return dates.Date{}, err
	}
	return dates.Today(settings.Location()), nil
}

// displayCurrency returns the configured ISO currency code.
func displayCurrency(ctx context.Context, l *ledger.Ledger) (string, error) {
	settings, err := l.Store().Settings(ctx)
	if err != nil {
		return "", err
	}
	return settings.Currency, nil
}

// resolveAccount finds an account by full id, unique id prefix, or exact
// name.
func resolveAccount(ctx context.Context, l *ledger.Ledger, ref string) (*model.Account, error) {
	accounts, err := l.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	var match *model.Account
	for i := range accounts {
		acc := &accounts[i]
		if acc.ID == ref || acc.Name == ref {
			return acc, nil
		}
		if strings.HasPrefix(acc.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("%w: ambiguous account %q", common.ErrValidation, ref)
			}
			match = acc
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: no account matches %q", common.ErrUnknownAccount, ref)
	}
	return match, nil
}

// resolveTransaction finds a transaction by full id or unique id prefix.
func resolveTransaction(ctx context.Context, l *ledger.Ledger, ref string) (*model.Transaction, error) {
	txns, err := l.Transactions(ctx, ledger.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	var match *model.Transaction
	for i := range txns {
		t := &txns[i]
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("%w: ambiguous transaction %q", common.ErrValidation, ref)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: no transaction matches %q", common.ErrNotFound, ref)
	}
	return match, nil
}
