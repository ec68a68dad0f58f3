// Package analytics computes derived aggregates from raw collections. Every
// function is pure: state comes in as slices plus an explicit "now", so the
// engine can be exercised without a store or timing dependencies.
package analytics

import (
	"time"

	"financetracker/internal/core"
)

// Balance is total income minus total expenses over the given set,
// independent of order.
func Balance(txns []core.Transaction) float64 {
	var balance float64
	for _, t := range txns {
		switch t.Type {
		case core.Income:
			balance += t.Amount
		case core.Expense:
			balance -= t.Amount
		}
	}
	return balance
}

// SumByType totals the amounts of one transaction kind.
func SumByType(txns []core.Transaction, kind core.TransactionType) float64 {
	var sum float64
	for _, t := range txns {
		if t.Type == kind {
			sum += t.Amount
		}
	}
	return sum
}

// WindowStart computes the beginning of the current budget period: weeks
// start on Sunday, months on day 1, anything else falls through to Jan 1.
func WindowStart(period core.BudgetPeriod, now time.Time) core.Date {
	switch period {
	case core.Month:
		return core.NewDate(now.Year(), int(now.Month()), 1)
	case core.Week:
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		return core.Today(sunday)
	default:
		return core.NewDate(now.Year(), 1, 1)
	}
}

// SavingsRate is the saved share of income as a percentage, zero when there
// is no income at all.
func SavingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income * 100
}
