package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "txn-1",
		Type:        TypeExpense,
		Category:    "Food",
		Amount:      decimal.NewFromInt(200),
		Description: "Groceries",
		AccountID:   "acc-1",
		Date:        dates.New(2025, time.October, 15),
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid expense", mutate: func(*Transaction) {}},
		{
			name: "valid transfer",
			mutate: func(txn *Transaction) {
				txn.Type = TypeTransfer
				txn.Category = "Between Accounts"
				txn.ToAccountID = "acc-2"
			},
		},
		{
			name:    "unknown type",
			mutate:  func(txn *Transaction) { txn.Type = "refund" },
			wantErr: common.ErrValidation,
		},
		{
			name:    "missing category",
			mutate:  func(txn *Transaction) { txn.Category = "  " },
			wantErr: common.ErrValidation,
		},
		{
			name:    "zero amount",
			mutate:  func(txn *Transaction) { txn.Amount = decimal.Zero },
			wantErr: common.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(txn *Transaction) { txn.Amount = decimal.NewFromInt(-50) },
			wantErr: common.ErrInvalidAmount,
		},
		{
			name:    "missing description",
			mutate:  func(txn *Transaction) { txn.Description = "" },
			wantErr: common.ErrValidation,
		},
		{
			name:    "missing account",
			mutate:  func(txn *Transaction) { txn.AccountID = "" },
			wantErr: common.ErrValidation,
		},
		{
			name:    "missing date",
			mutate:  func(txn *Transaction) { txn.Date = dates.Date{} },
			wantErr: common.ErrValidation,
		},
		{
			name: "transfer without destination",
			mutate: func(txn *Transaction) {
				txn.Type = TypeTransfer
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "transfer to same account",
			mutate: func(txn *Transaction) {
				txn.Type = TypeTransfer
				txn.ToAccountID = txn.AccountID
			},
			wantErr: common.ErrSameAccount,
		},
		{
			name: "expense with destination",
			mutate: func(txn *Transaction) {
				txn.ToAccountID = "acc-2"
			},
			wantErr: common.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)

			err := txn.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransactionReferences(t *testing.T) {
	txn := validTransaction()
	txn.Type = TypeTransfer
	txn.ToAccountID = "acc-2"

	if !txn.References("acc-1") {
		t.Error("source account should be referenced")
	}
	if !txn.References("acc-2") {
		t.Error("destination account should be referenced")
	}
	if txn.References("acc-3") {
		t.Error("unrelated account should not be referenced")
	}
}
