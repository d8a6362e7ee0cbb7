package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/dates"
)

// Budget caps spending for one expense category over a recurring period.
// The amount spent against it is always derived from transactions, never
// stored.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   dates.Period    `json:"period"`
}

// Validate checks the budget's fields.
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return fmt.Errorf("%w: missing budget category", common.ErrValidation)
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", common.ErrInvalidAmount, b.Amount)
	}
	if !dates.ValidBudgetPeriod(b.Period) {
		return fmt.Errorf("%w: budget period must be weekly, monthly, or yearly", common.ErrValidation)
	}
	return nil
}
