package exchange

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
)

// Default categories assigned to statement entries; OFX files carry no
// category information, so imported transactions land in the catch-all
// buckets and can be recategorized afterwards.
const (
	ofxIncomeCategory  = "Other"
	ofxExpenseCategory = "Other"
)

// ParseOFX reads an OFX/QFX statement and converts its entries into ledger
// transactions against the given account. Credits become income, debits
// become expenses; amounts are always stored positive, the type carries the
// direction. IDs are left empty so the ledger assigns its own.
func ParseOFX(r io.Reader, accountID string) ([]model.Transaction, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var txns []model.Transaction
	statements := 0

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		statements++
		for _, entry := range stmt.BankTranList.Transactions {
			txns = append(txns, convertOFX(entry, accountID))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		statements++
		for _, entry := range stmt.BankTranList.Transactions {
			txns = append(txns, convertOFX(entry, accountID))
		}
	}

	slog.Info("parsed OFX statement",
		"statements", statements,
		"transactions", len(txns))
	return txns, nil
}

// convertOFX maps one OFX entry onto the ledger model. OFX uses negative
// amounts for debits.
func convertOFX(entry ofxgo.Transaction, accountID string) model.Transaction {
	amount := ratToDecimal(&entry.TrnAmt.Rat)

	txType := model.TypeIncome
	category := ofxIncomeCategory
	if amount.IsNegative() {
		txType = model.TypeExpense
		category = ofxExpenseCategory
		amount = amount.Neg()
	}

	description := strings.TrimSpace(string(entry.Name))
	if memo := strings.TrimSpace(string(entry.Memo)); description == "" && memo != "" {
		description = memo
	}
	if description == "" {
		description = "Imported transaction"
	}

	return model.Transaction{
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: description,
		AccountID:   accountID,
		Date:        dates.FromTime(entry.DtPosted.Time),
	}
}

// ratToDecimal converts the big.Rat amounts ofxgo produces. Statement
// amounts are decimal fractions, so the division is exact at two places.
func ratToDecimal(r *big.Rat) decimal.Decimal {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, 2)
}
