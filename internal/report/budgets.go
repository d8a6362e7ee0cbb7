// Package report computes read-only projections over the ledger: period
// summaries for the dashboard and budget spend/utilization figures. All
// functions are pure; they never write.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
)

// BudgetState buckets a budget's utilization.
type BudgetState string

// Utilization buckets: on-track is at most 80%, near-limit is 80–100%,
// over-budget is anything beyond.
const (
	OnTrack    BudgetState = "on-track"
	NearLimit  BudgetState = "near-limit"
	OverBudget BudgetState = "over-budget"
)

var hundred = decimal.NewFromInt(100)

// BudgetStatus is one budget's derived standing for the current instance of
// its period.
type BudgetStatus struct {
	Budget      model.Budget
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	Utilization decimal.Decimal
	State       BudgetState
}

// Spent sums the expense transactions of the budget's category whose dates
// fall inside r.
func Spent(budget model.Budget, txns []model.Transaction, r dates.Range) decimal.Decimal {
	total := decimal.Zero
	for i := range txns {
		t := &txns[i]
		if t.Type != model.TypeExpense || t.Category != budget.Category {
			continue
		}
		if !r.Contains(t.Date) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total
}

// Classify buckets spent against amount. A zero-amount budget has
// utilization 0 by convention; it is over-budget as soon as anything is
// spent against it and on-track otherwise.
func Classify(spent, amount decimal.Decimal) (utilization decimal.Decimal, state BudgetState) {
	if amount.IsZero() {
		if spent.IsPositive() {
			return decimal.Zero, OverBudget
		}
		return decimal.Zero, OnTrack
	}

	utilization = spent.Div(amount).Mul(hundred)
	switch {
	case utilization.GreaterThan(hundred):
		state = OverBudget
	case utilization.GreaterThan(decimal.NewFromInt(80)):
		state = NearLimit
	default:
		state = OnTrack
	}
	return utilization, state
}

// Status computes a budget's standing for the current instance of its
// period, evaluated against today.
func Status(budget model.Budget, txns []model.Transaction, today dates.Date) BudgetStatus {
	r := dates.Resolve(budget.Period, today, nil, nil)
	spent := Spent(budget, txns, r)
	utilization, state := Classify(spent, budget.Amount)
	return BudgetStatus{
		Budget:      budget,
		Spent:       spent,
		Remaining:   budget.Amount.Sub(spent),
		Utilization: utilization,
		State:       state,
	}
}
