package exchange

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestAccountsCSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	accounts := map[string]model.Account{
		"a-1": {ID: "a-1", Name: "Cash", Type: model.AccountCash, Balance: decimal.NewFromInt(100)},
		"a-2": {ID: "a-2", Name: `Joint "household" fund`, Type: model.AccountBank, Balance: decimal.RequireFromString("250.50"), BankName: "HDFC"},
		"a-3": {ID: "a-3", Name: "Visa, travel", Type: model.AccountCreditCard, Balance: decimal.NewFromInt(-40), LastFour: "4242"},
	}
	require.NoError(t, store.SaveAccounts(ctx, accounts))

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(ctx, store, storage.KeyAccounts, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "id,name,type,balance"), "header row first")
	assert.Contains(t, out, `"Joint ""household"" fund"`, "embedded quotes doubled")
	assert.Contains(t, out, `"Visa, travel"`, "embedded commas quoted")

	// Wipe and reimport: three rows become a three-entry map keyed by id.
	require.NoError(t, store.SaveAccounts(ctx, map[string]model.Account{}))
	require.NoError(t, ImportCSV(ctx, store, storage.KeyAccounts, &buf))

	got, err := store.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, `Joint "household" fund`, got["a-2"].Name)
	assert.True(t, got["a-2"].Balance.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, "4242", got["a-3"].LastFour)
}

func TestTransactionsCSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txns := []model.Transaction{
		{
			ID: "t-1", Type: model.TypeExpense, Category: "Food",
			Amount: decimal.RequireFromString("123.45"), Description: "Groceries",
			AccountID: "a-1", Date: dates.New(2025, time.October, 15),
		},
		{
			ID: "t-2", Type: model.TypeTransfer, Category: "Between Accounts",
			Amount: decimal.NewFromInt(500), Description: "Top up",
			AccountID: "a-2", ToAccountID: "a-1", Date: dates.New(2025, time.October, 16),
		},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(ctx, store, storage.KeyTransactions, &buf))

	require.NoError(t, store.SaveTransactions(ctx, nil))
	require.NoError(t, ImportCSV(ctx, store, storage.KeyTransactions, &buf))

	got, err := store.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, dates.New(2025, time.October, 16), got[1].Date)
	assert.Equal(t, "a-1", got[1].ToAccountID)
}

func TestCategoriesCSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(ctx, store, storage.KeyCategories, &buf))
	assert.Contains(t, buf.String(), "income,Salary")
	assert.Contains(t, buf.String(), "expense,Food")

	require.NoError(t, ImportCSV(ctx, store, storage.KeyCategories, &buf))

	set, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategorySet(), set)
}

func TestImportCSVLeavesStateUntouchedOnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	existing := []model.Transaction{{
		ID: "t-1", Type: model.TypeExpense, Category: "Food",
		Amount: decimal.NewFromInt(10), Description: "Lunch",
		AccountID: "a-1", Date: dates.New(2025, time.October, 1),
	}}
	require.NoError(t, store.SaveTransactions(ctx, existing))

	// Second row has an unparseable amount, so nothing may be written.
	bad := strings.Join([]string{
		"id,type,category,amount,description,accountId,toAccountId,date",
		"x-1,expense,Food,50,ok,a-1,,2025-10-02",
		"x-2,expense,Food,not-a-number,bad,a-1,,2025-10-03",
	}, "\n")

	err := ImportCSV(ctx, store, storage.KeyTransactions, strings.NewReader(bad))
	require.ErrorIs(t, err, common.ErrMalformedImport)

	got, err := store.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t-1", got[0].ID)
}

func TestImportCSVRejectsAccountsWithoutID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	bad := "id,name,type,balance\n,Cash,Cash,100\n"
	err := ImportCSV(ctx, store, storage.KeyAccounts, strings.NewReader(bad))
	assert.ErrorIs(t, err, common.ErrMalformedImport)
}

func TestImportCSVRejectsMissingHeader(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := ImportCSV(ctx, store, storage.KeyTransactions, strings.NewReader(""))
	assert.ErrorIs(t, err, common.ErrMalformedImport)
}

func TestSettingsHaveNoCSVForm(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var buf bytes.Buffer
	err := ExportCSV(ctx, store, storage.KeySettings, &buf)
	assert.ErrorIs(t, err, common.ErrUnknownDataKey)

	_, err = FileName(storage.KeySettings, FormatCSV)
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	accounts := map[string]model.Account{
		"a-1": {ID: "a-1", Name: "Cash", Type: model.AccountCash, Balance: decimal.NewFromInt(100)},
	}
	require.NoError(t, store.SaveAccounts(ctx, accounts))

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(ctx, store, storage.KeyAccounts, &buf))
	assert.Contains(t, buf.String(), `"name": "Cash"`)

	require.NoError(t, store.SaveAccounts(ctx, map[string]model.Account{}))
	require.NoError(t, ImportJSON(ctx, store, storage.KeyAccounts, &buf))

	got, err := store.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cash", got["a-1"].Name)
}

func TestImportJSONRejectsMalformedInput(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	existing := map[string]model.Account{
		"a-1": {ID: "a-1", Name: "Cash", Type: model.AccountCash},
	}
	require.NoError(t, store.SaveAccounts(ctx, existing))

	err := ImportJSON(ctx, store, storage.KeyAccounts, strings.NewReader(`{"not settled`))
	require.ErrorIs(t, err, common.ErrMalformedImport)

	got, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1, "a malformed file must not clobber stored data")
}

func TestFileName(t *testing.T) {
	name, err := FileName(storage.KeyAccounts, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "accounts.json", name)

	name, err = FileName(storage.KeyTransactions, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "transactions.csv", name)

	_, err = FileName("nonsense", FormatJSON)
	assert.ErrorIs(t, err, common.ErrUnknownDataKey)
}
