package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrateReachesExpectedVersion(t *testing.T) {
	store := newTestStore(t)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Migrating again is a no-op.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestLoadDefaultsOnMissingKeys(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.NotNil(t, accounts, "missing accounts key should load as an empty map")

	txns, err := store.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)

	budgets, err := store.Budgets(ctx)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	set, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategorySet(), set, "missing categories key should seed the defaults")

	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := map[string]model.Account{
		"a": {ID: "a", Name: "Cash", Type: model.AccountCash, Balance: decimal.NewFromInt(100)},
		"b": {ID: "b", Name: "Bank", Type: model.AccountBank, Balance: decimal.NewFromInt(200)},
	}
	require.NoError(t, store.SaveAccounts(ctx, first))

	second := map[string]model.Account{
		"c": {ID: "c", Name: "Card", Type: model.AccountCreditCard, Balance: decimal.NewFromInt(300)},
	}
	require.NoError(t, store.SaveAccounts(ctx, second))

	got, err := store.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "save replaces the collection, it does not merge")
	assert.Equal(t, "Card", got["c"].Name)
}

func TestRoundTripPreservesValues(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txns := []model.Transaction{
		{
			ID: "t-1", Type: model.TypeExpense, Category: "Food",
			Amount: decimal.RequireFromString("123.45"), Description: "Groceries",
			AccountID: "a", Date: dates.New(2025, time.October, 15),
		},
		{
			ID: "t-2", Type: model.TypeTransfer, Category: "Between Accounts",
			Amount: decimal.NewFromInt(500), Description: "Top up",
			AccountID: "a", ToAccountID: "b", Date: dates.New(2025, time.October, 16),
		},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, dates.New(2025, time.October, 15), got[0].Date)
	assert.Equal(t, "b", got[1].ToAccountID)
	assert.Empty(t, got[0].ToAccountID)
}

func TestTxCommitPublishesAllKeys(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.SaveAccounts(ctx, map[string]model.Account{
		"a": {ID: "a", Name: "Cash", Type: model.AccountCash},
	}))
	require.NoError(t, tx.SaveTransactions(ctx, []model.Transaction{
		{ID: "t-1", Type: model.TypeExpense, Category: "Food",
			Amount: decimal.NewFromInt(10), Description: "x",
			AccountID: "a", Date: dates.New(2025, time.October, 1)},
	}))
	require.NoError(t, tx.Commit())

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	txns, err := store.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestTxRollbackDiscardsAllKeys(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.SaveAccounts(ctx, map[string]model.Account{
		"a": {ID: "a", Name: "Cash", Type: model.AccountCash},
	}))
	require.NoError(t, tx.Rollback())

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts, "rolled back writes must not be visible")

	// Rollback after commit-or-rollback is harmless.
	assert.NoError(t, tx.Rollback())
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestValidateContext(t *testing.T) {
	store := newTestStore(t)

	//nolint:staticcheck // deliberately passing a nil context
	_, err := store.Accounts(nil)
	assert.Error(t, err)
}
