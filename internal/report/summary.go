package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
)

// recentCount is how many recent transactions a summary carries.
const recentCount = 5

// Summary is the dashboard projection for one date range.
type Summary struct {
	Range    dates.Range
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Accounts []model.Account
	Recent   []model.Transaction
	Budgets  []BudgetStatus
}

// Summarize builds the dashboard projection. Transfers move money between
// accounts and so count as neither income nor expense. Recent transactions
// ignore the range: the dashboard always shows the latest activity.
func Summarize(txns []model.Transaction, accounts map[string]model.Account, budgets []model.Budget, r dates.Range, today dates.Date) Summary {
	s := Summary{
		Range:    r,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for i := range txns {
		t := &txns[i]
		if !r.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case model.TypeExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expenses)

	s.Accounts = make([]model.Account, 0, len(accounts))
	for _, acc := range accounts {
		s.Accounts = append(s.Accounts, acc)
	}
	sort.Slice(s.Accounts, func(i, j int) bool {
		return s.Accounts[i].Name < s.Accounts[j].Name
	})

	recent := make([]model.Transaction, len(txns))
	copy(recent, txns)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	s.Recent = recent

	for _, b := range budgets {
		s.Budgets = append(s.Budgets, Status(b, txns, today))
	}

	return s
}

// TotalBalance sums every account balance.
func TotalBalance(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		total = total.Add(accounts[i].Balance)
	}
	return total
}
