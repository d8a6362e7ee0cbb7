// Package model defines the core domain types of the ledger.
package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
)

// TransactionType classifies a transaction's effect on account balances.
type TransactionType string

const (
	// TypeIncome credits the source account.
	TypeIncome TransactionType = "income"
	// TypeExpense debits the source account.
	TypeExpense TransactionType = "expense"
	// TypeTransfer moves the amount from the source to the destination account.
	TypeTransfer TransactionType = "transfer"
)

// ValidTransactionType reports whether t is one of the known types.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}

// Transaction represents a single ledger entry. ToAccountID is set only for
// transfers.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AccountID   string          `json:"accountId"`
	ToAccountID string          `json:"toAccountId,omitempty"`
	Date        dates.Date      `json:"date"`
}

// Validate checks the transaction's own fields. Account references are
// checked against the account collection by the ledger.
func (t *Transaction) Validate() error {
	if !ValidTransactionType(t.Type) {
		return fmt.Errorf("%w: unknown transaction type %q", common.ErrValidation, t.Type)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: missing category", common.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", common.ErrInvalidAmount, t.Amount)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: missing description", common.ErrValidation)
	}
	if t.AccountID == "" {
		return fmt.Errorf("%w: missing account", common.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", common.ErrValidation)
	}
	switch t.Type {
	case TypeTransfer:
		if t.ToAccountID == "" {
			return fmt.Errorf("%w: missing destination account for transfer", common.ErrValidation)
		}
		if t.ToAccountID == t.AccountID {
			return common.ErrSameAccount
		}
	default:
		if t.ToAccountID != "" {
			return fmt.Errorf("%w: destination account only applies to transfers", common.ErrValidation)
		}
	}
	return nil
}

// References reports whether the transaction involves the given account as
// either its source or its transfer destination.
func (t *Transaction) References(accountID string) bool {
	return t.AccountID == accountID || t.ToAccountID == accountID
}
