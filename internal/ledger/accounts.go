package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/model"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// Accounts returns all accounts sorted by name.
func (l *Ledger) Accounts(ctx context.Context) ([]model.Account, error) {
	byID, err := l.store.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(byID))
	for _, acc := range byID {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})
	return accounts, nil
}

// AccountByID returns one account.
func (l *Ledger) AccountByID(ctx context.Context, id string) (*model.Account, error) {
	byID, err := l.store.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	acc, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	return &acc, nil
}

// CreateAccount adds a new account. The balance on acc is the opening
// balance; after creation it changes only through transaction mutations.
func (l *Ledger) CreateAccount(ctx context.Context, acc model.Account) (*model.Account, error) {
	if acc.ID == "" {
		acc.ID = uuid.NewString()
	}
	if err := acc.Validate(); err != nil {
		return nil, err
	}

	accounts, err := l.store.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := accounts[acc.ID]; ok {
		return nil, fmt.Errorf("%w: account %s", common.ErrDuplicateEntry, acc.ID)
	}
	accounts[acc.ID] = acc

	if err := l.store.SaveAccounts(ctx, accounts); err != nil {
		return nil, err
	}
	slog.Info("created account", "id", acc.ID, "name", acc.Name, "type", acc.Type)
	return &acc, nil
}

// UpdateAccount edits an account's descriptive fields. The stored balance is
// preserved regardless of what the caller passes in: balances belong to the
// transaction mutation paths.
func (l *Ledger) UpdateAccount(ctx context.Context, acc model.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}

	accounts, err := l.store.Accounts(ctx)
	if err != nil {
		return err
	}
	current, ok := accounts[acc.ID]
	if !ok {
		return fmt.Errorf("%w: account %s", common.ErrNotFound, acc.ID)
	}
	acc.Balance = current.Balance
	accounts[acc.ID] = acc

	return l.store.SaveAccounts(ctx, accounts)
}

// AccountUsage returns the number of transactions that reference the account
// as either source or transfer destination. A non-zero count means deleting
// the account will cascade; callers must confirm with the user first.
func (l *Ledger) AccountUsage(ctx context.Context, id string) (int, error) {
	txns, err := l.store.Transactions(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range txns {
		if txns[i].References(id) {
			count++
		}
	}
	return count, nil
}

// DeleteAccount removes an account and every transaction referencing it.
// Before a cascading transaction is dropped, its effect on any surviving
// counterparty account is reversed, so a transfer's other side is not left
// with a stale balance. Everything commits atomically.
func (l *Ledger) DeleteAccount(ctx context.Context, id string) error {
	return l.inTx(ctx, func(tx *storage.Tx) error {
		accounts, err := tx.Accounts(ctx)
		if err != nil {
			return err
		}
		if _, ok := accounts[id]; !ok {
			return fmt.Errorf("%w: account %s", common.ErrNotFound, id)
		}

		txns, err := tx.Transactions(ctx)
		if err != nil {
			return err
		}

		kept := txns[:0:0]
		removed := 0
		for i := range txns {
			t := txns[i]
			if !t.References(id) {
				kept = append(kept, t)
				continue
			}
			removed++

			// Reverse the side of the effect that lands on the surviving
			// account. The deleted account's own balance no longer matters.
			if t.Type == model.TypeTransfer {
				other := t.ToAccountID
				delta := t.Amount.Neg() // reverse the credit on the destination
				if other == id {
					other = t.AccountID
					delta = t.Amount // reverse the debit on the source
				}
				if _, ok := accounts[other]; ok {
					if err := adjust(accounts, other, delta); err != nil {
						return err
					}
				}
			}
		}

		delete(accounts, id)

		if err := tx.SaveTransactions(ctx, kept); err != nil {
			return err
		}
		if err := tx.SaveAccounts(ctx, accounts); err != nil {
			return err
		}
		slog.Info("deleted account", "id", id, "cascaded_transactions", removed)
		return nil
	})
}
