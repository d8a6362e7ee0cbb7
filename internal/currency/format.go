// Package currency renders decimal amounts for display in the configured
// currency.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders amount using the symbol and fraction digits of the ISO 4217
// currency code. Unknown codes fall back to the bare decimal string so a
// misconfigured ledger still prints something usable.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// FormatSigned is Format with an explicit leading + for positive amounts,
// used for transaction rows where direction matters.
func FormatSigned(amount decimal.Decimal, code string) string {
	if amount.IsPositive() {
		return "+" + Format(amount, code)
	}
	return Format(amount, code)
}
