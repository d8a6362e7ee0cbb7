package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/common"
)

// Known account types. The type is descriptive only; it does not change
// balance arithmetic.
const (
	AccountCash       = "Cash"
	AccountBank       = "Bank Account"
	AccountCreditCard = "Credit Card"
	AccountDebitCard  = "Debit Card"
	AccountInvestment = "Investment Account"
	AccountSavings    = "Savings Account"
)

// AccountTypes lists the selectable account types.
var AccountTypes = []string{
	AccountCash,
	AccountBank,
	AccountCreditCard,
	AccountDebitCard,
	AccountInvestment,
	AccountSavings,
}

var lastFourPattern = regexp.MustCompile(`^\d{4}$`)

// Account is a container of funds. Balance is set when the account is
// created (the opening balance) and afterwards changes only as a side effect
// of transaction mutations.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description,omitempty"`
	BankName    string          `json:"bankName,omitempty"`
	LastFour    string          `json:"lastFour,omitempty"`
	Expiry      string          `json:"expiry,omitempty"`
}

// Validate checks the account's fields.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: missing account name", common.ErrValidation)
	}
	if strings.TrimSpace(a.Type) == "" {
		return fmt.Errorf("%w: missing account type", common.ErrValidation)
	}
	if a.LastFour != "" && !lastFourPattern.MatchString(a.LastFour) {
		return fmt.Errorf("%w: last four digits must be exactly 4 numbers", common.ErrValidation)
	}
	return nil
}
