package model

import (
	"errors"
	"testing"

	"github.com/pocketbook/pocketbook/internal/common"
)

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{name: "valid", account: Account{Name: "Wallet", Type: AccountCash}},
		{name: "valid with card details", account: Account{
			Name: "Visa", Type: AccountCreditCard,
			BankName: "HDFC", LastFour: "4242", Expiry: "09/27",
		}},
		{name: "missing name", account: Account{Name: "  ", Type: AccountCash}, wantErr: true},
		{name: "missing type", account: Account{Name: "Wallet"}, wantErr: true},
		{name: "short last four", account: Account{Name: "Visa", Type: AccountCreditCard, LastFour: "42"}, wantErr: true},
		{name: "non numeric last four", account: Account{Name: "Visa", Type: AccountCreditCard, LastFour: "42ab"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				if !errors.Is(err, common.ErrValidation) {
					t.Errorf("Validate() = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() returned error: %v", err)
			}
		})
	}
}

func TestSettingsLocationFallsBackToUTC(t *testing.T) {
	s := Settings{Timezone: "Atlantis/Nowhere"}
	if s.Location() != nil && s.Location().String() != "UTC" {
		t.Errorf("Location() = %v, want UTC", s.Location())
	}

	s = DefaultSettings()
	if s.Location().String() != "Asia/Kolkata" {
		t.Errorf("Location() = %v, want Asia/Kolkata", s.Location())
	}
}
