// Package ledger implements the domain managers for accounts, transactions,
// budgets, and categories, and owns the one real invariant of the system:
// every account balance stays consistent with the net effect of the
// persisted transactions relative to its opening balance.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// Ledger coordinates all mutations of the persisted collections. Mutations
// that touch both the transaction list and the account map run inside a
// single store transaction, so either both collections are persisted or
// neither is.
type Ledger struct {
	store *storage.Store
}

// New creates a ledger over the given store.
func New(store *storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Store exposes the underlying store for read-only callers (reports, TUI).
func (l *Ledger) Store() *storage.Store {
	return l.store
}

// inTx runs fn inside a store transaction, committing on success.
func (l *Ledger) inTx(ctx context.Context, fn func(tx *storage.Tx) error) error {
	tx, err := l.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// applyEffect adjusts account balances for a transaction. sign is +1 to
// apply the transaction's effect and -1 to reverse it.
func applyEffect(accounts map[string]model.Account, t *model.Transaction, sign int) error {
	amount := t.Amount
	if sign < 0 {
		amount = amount.Neg()
	}

	switch t.Type {
	case model.TypeIncome:
		return adjust(accounts, t.AccountID, amount)
	case model.TypeExpense:
		return adjust(accounts, t.AccountID, amount.Neg())
	case model.TypeTransfer:
		if err := adjust(accounts, t.AccountID, amount.Neg()); err != nil {
			return err
		}
		return adjust(accounts, t.ToAccountID, amount)
	}
	return fmt.Errorf("%w: unknown transaction type %q", common.ErrValidation, t.Type)
}

// adjust adds delta to one account's balance, failing on unknown ids so a
// bad reference can never silently create an account.
func adjust(accounts map[string]model.Account, id string, delta decimal.Decimal) error {
	acc, ok := accounts[id]
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownAccount, id)
	}
	acc.Balance = acc.Balance.Add(delta)
	accounts[id] = acc
	return nil
}
