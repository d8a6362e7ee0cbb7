package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// TransactionFilter narrows a transaction listing. Zero values mean "all".
type TransactionFilter struct {
	Type     model.TransactionType
	Category string
	Range    *dates.Range
}

// Transactions returns transactions matching the filter, newest first.
func (l *Ledger) Transactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	txns, err := l.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	filtered := txns[:0:0]
	for _, t := range txns {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.Range != nil && !filter.Range.Contains(t.Date) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered, nil
}

// TransactionByID returns one transaction.
func (l *Ledger) TransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	txns, err := l.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ID == id {
			return &txns[i], nil
		}
	}
	return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
}

// AddTransaction validates txn, assigns it an ID, appends it to the ledger,
// and applies its balance effect. The transaction list and account map are
// committed together.
func (l *Ledger) AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	err := l.inTx(ctx, func(tx *storage.Tx) error {
		if err := l.checkReferences(ctx, tx, &txn); err != nil {
			return err
		}

		accounts, err := tx.Accounts(ctx)
		if err != nil {
			return err
		}
		if err := applyEffect(accounts, &txn, +1); err != nil {
			return err
		}

		txns, err := tx.Transactions(ctx)
		if err != nil {
			return err
		}
		txns = append(txns, txn)

		if err := tx.SaveTransactions(ctx, txns); err != nil {
			return err
		}
		return tx.SaveAccounts(ctx, accounts)
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction replaces an existing transaction. The prior balance
// effect is reversed before the new one is applied; editing in place
// without the reversal would leave the old effect baked into the balances.
func (l *Ledger) UpdateTransaction(ctx context.Context, txn model.Transaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: missing transaction id", common.ErrValidation)
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	return l.inTx(ctx, func(tx *storage.Tx) error {
		if err := l.checkReferences(ctx, tx, &txn); err != nil {
			return err
		}

		txns, err := tx.Transactions(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range txns {
			if txns[i].ID == txn.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: transaction %s", common.ErrNotFound, txn.ID)
		}

		accounts, err := tx.Accounts(ctx)
		if err != nil {
			return err
		}
		if err := applyEffect(accounts, &txns[idx], -1); err != nil {
			return err
		}
		if err := applyEffect(accounts, &txn, +1); err != nil {
			return err
		}
		txns[idx] = txn

		if err := tx.SaveTransactions(ctx, txns); err != nil {
			return err
		}
		return tx.SaveAccounts(ctx, accounts)
	})
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	return l.inTx(ctx, func(tx *storage.Tx) error {
		txns, err := tx.Transactions(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range txns {
			if txns[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
		}

		accounts, err := tx.Accounts(ctx)
		if err != nil {
			return err
		}
		if err := applyEffect(accounts, &txns[idx], -1); err != nil {
			return err
		}
		txns = append(txns[:idx], txns[idx+1:]...)

		if err := tx.SaveTransactions(ctx, txns); err != nil {
			return err
		}
		return tx.SaveAccounts(ctx, accounts)
	})
}

// checkReferences verifies that the transaction's accounts exist and its
// category is defined for its type.
func (l *Ledger) checkReferences(ctx context.Context, tx *storage.Tx, txn *model.Transaction) error {
	accounts, err := tx.Accounts(ctx)
	if err != nil {
		return err
	}
	if _, ok := accounts[txn.AccountID]; !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownAccount, txn.AccountID)
	}
	if txn.Type == model.TypeTransfer {
		if _, ok := accounts[txn.ToAccountID]; !ok {
			return fmt.Errorf("%w: %s", common.ErrUnknownAccount, txn.ToAccountID)
		}
	}

	categories, err := tx.Categories(ctx)
	if err != nil {
		return err
	}
	if !categories.Contains(txn.Type, txn.Category) {
		return fmt.Errorf("%w: %q is not a %s category", common.ErrUnknownCategory, txn.Category, txn.Type)
	}
	return nil
}
