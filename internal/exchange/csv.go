package exchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// Column orders for each collection's CSV form. The header row always lists
// the field names; values are quoted per RFC 4180 (embedded quotes doubled).
var (
	accountColumns     = []string{"id", "name", "type", "balance", "description", "bankName", "lastFour", "expiry"}
	transactionColumns = []string{"id", "type", "category", "amount", "description", "accountId", "toAccountId", "date"}
	budgetColumns      = []string{"id", "category", "amount", "period"}
	categoryColumns    = []string{"type", "name"}
)

// ExportCSV writes the current value of a key to w as CSV, one row per
// record. The id-keyed account map is flattened to rows; the category set
// becomes (type, name) rows.
func ExportCSV(ctx context.Context, store *storage.Store, key string, w io.Writer) error {
	cw := csv.NewWriter(w)

	switch key {
	case storage.KeyAccounts:
		accounts, err := store.Accounts(ctx)
		if err != nil {
			return err
		}
		if err := cw.Write(accountColumns); err != nil {
			return err
		}
		ids := make([]string, 0, len(accounts))
		for id := range accounts {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			a := accounts[id]
			record := []string{a.ID, a.Name, a.Type, a.Balance.String(), a.Description, a.BankName, a.LastFour, a.Expiry}
			if err := cw.Write(record); err != nil {
				return err
			}
		}

	case storage.KeyTransactions:
		txns, err := store.Transactions(ctx)
		if err != nil {
			return err
		}
		if err := cw.Write(transactionColumns); err != nil {
			return err
		}
		for i := range txns {
			t := &txns[i]
			record := []string{t.ID, string(t.Type), t.Category, t.Amount.String(), t.Description, t.AccountID, t.ToAccountID, t.Date.String()}
			if err := cw.Write(record); err != nil {
				return err
			}
		}

	case storage.KeyBudgets:
		budgets, err := store.Budgets(ctx)
		if err != nil {
			return err
		}
		if err := cw.Write(budgetColumns); err != nil {
			return err
		}
		for i := range budgets {
			b := &budgets[i]
			record := []string{b.ID, b.Category, b.Amount.String(), string(b.Period)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}

	case storage.KeyCategories:
		set, err := store.Categories(ctx)
		if err != nil {
			return err
		}
		if err := cw.Write(categoryColumns); err != nil {
			return err
		}
		for _, group := range []struct {
			t     model.TransactionType
			names []string
		}{
			{model.TypeIncome, set.Income},
			{model.TypeExpense, set.Expense},
			{model.TypeTransfer, set.Transfer},
		} {
			for _, name := range group.names {
				if err := cw.Write([]string{string(group.t), name}); err != nil {
					return err
				}
			}
		}

	default:
		return fmt.Errorf("%w: %s has no CSV form", common.ErrUnknownDataKey, key)
	}

	cw.Flush()
	return cw.Error()
}

// ImportCSV parses r as the CSV form of a key's collection and replaces the
// stored value. The whole file is parsed and validated before anything is
// written. Account rows are reconstituted into a mapping keyed by each
// row's id.
func ImportCSV(ctx context.Context, store *storage.Store, key string, r io.Reader) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedImport, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: missing header row", common.ErrMalformedImport)
	}
	header := headerIndex(rows[0])
	rows = rows[1:]

	field := func(row []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	switch key {
	case storage.KeyAccounts:
		accounts := make(map[string]model.Account, len(rows))
		for n, row := range rows {
			id := field(row, "id")
			if id == "" {
				return fmt.Errorf("%w: account row %d has no id", common.ErrMalformedImport, n+1)
			}
			balance, err := parseDecimal(field(row, "balance"))
			if err != nil {
				return fmt.Errorf("%w: account row %d: %v", common.ErrMalformedImport, n+1, err)
			}
			accounts[id] = model.Account{
				ID:          id,
				Name:        field(row, "name"),
				Type:        field(row, "type"),
				Balance:     balance,
				Description: field(row, "description"),
				BankName:    field(row, "bankName"),
				LastFour:    field(row, "lastFour"),
				Expiry:      field(row, "expiry"),
			}
		}
		return store.SaveAccounts(ctx, accounts)

	case storage.KeyTransactions:
		txns := make([]model.Transaction, 0, len(rows))
		for n, row := range rows {
			amount, err := parseDecimal(field(row, "amount"))
			if err != nil {
				return fmt.Errorf("%w: transaction row %d: %v", common.ErrMalformedImport, n+1, err)
			}
			date, err := dates.Parse(field(row, "date"))
			if err != nil {
				return fmt.Errorf("%w: transaction row %d: %v", common.ErrMalformedImport, n+1, err)
			}
			txns = append(txns, model.Transaction{
				ID:          field(row, "id"),
				Type:        model.TransactionType(field(row, "type")),
				Category:    field(row, "category"),
				Amount:      amount,
				Description: field(row, "description"),
				AccountID:   field(row, "accountId"),
				ToAccountID: field(row, "toAccountId"),
				Date:        date,
			})
		}
		return store.SaveTransactions(ctx, txns)

	case storage.KeyBudgets:
		budgets := make([]model.Budget, 0, len(rows))
		for n, row := range rows {
			amount, err := parseDecimal(field(row, "amount"))
			if err != nil {
				return fmt.Errorf("%w: budget row %d: %v", common.ErrMalformedImport, n+1, err)
			}
			budgets = append(budgets, model.Budget{
				ID:       field(row, "id"),
				Category: field(row, "category"),
				Amount:   amount,
				Period:   dates.Period(field(row, "period")),
			})
		}
		return store.SaveBudgets(ctx, budgets)

	case storage.KeyCategories:
		var set model.CategorySet
		for n, row := range rows {
			t := model.TransactionType(field(row, "type"))
			if err := set.Add(t, field(row, "name")); err != nil {
				return fmt.Errorf("%w: category row %d: %v", common.ErrMalformedImport, n+1, err)
			}
		}
		return store.SaveCategories(ctx, set)
	}

	return fmt.Errorf("%w: %s has no CSV form", common.ErrUnknownDataKey, key)
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
