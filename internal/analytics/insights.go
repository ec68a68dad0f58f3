package analytics

import (
	"sort"
	"time"

	"financetracker/internal/core"
)

// Comparison is the month-over-month insight for income and expenses.
// A change is 0 whenever the prior month's total is 0; "no change" and
// "undefined, nothing last month" are deliberately indistinguishable here.
type Comparison struct {
	CurrentIncome   float64 `json:"currentIncome"`
	CurrentExpenses float64 `json:"currentExpenses"`
	IncomeChange    float64 `json:"incomeChange"`
	ExpenseChange   float64 `json:"expenseChange"`
	SavingsRate     float64 `json:"savingsRate"`
}

// MonthlyComparison compares the month containing now against the
// immediately preceding calendar month.
func MonthlyComparison(txns []core.Transaction, now time.Time) Comparison {
	currentStart := core.NewDate(now.Year(), int(now.Month()), 1)
	prevStart := core.Date{Time: currentStart.AddDate(0, -1, 0)}
	prevEnd := core.Date{Time: currentStart.AddDate(0, 0, -1)}

	var current, previous []core.Transaction
	for _, t := range txns {
		d := t.EffectiveDate()
		switch {
		case !d.Before(currentStart):
			current = append(current, t)
		case d.Within(prevStart, prevEnd):
			previous = append(previous, t)
		}
	}

	income := SumByType(current, core.Income)
	expenses := SumByType(current, core.Expense)
	prevIncome := SumByType(previous, core.Income)
	prevExpenses := SumByType(previous, core.Expense)

	return Comparison{
		CurrentIncome:   income,
		CurrentExpenses: expenses,
		IncomeChange:    percentChange(income, prevIncome),
		ExpenseChange:   percentChange(expenses, prevExpenses),
		SavingsRate:     SavingsRate(income, expenses),
	}
}

func percentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// CategoryTotal is one row of the top-spending ranking.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TopSpendingCategories groups the current month's expenses by category and
// returns the top n by amount. Ties keep first-encountered order.
func TopSpendingCategories(txns []core.Transaction, now time.Time, n int) []CategoryTotal {
	startOfMonth := core.NewDate(now.Year(), int(now.Month()), 1)

	totals := make(map[string]float64)
	var order []string
	for _, t := range txns {
		if t.Type != core.Expense || t.EffectiveDate().Before(startOfMonth) {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	ranked := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, CategoryTotal{Category: category, Amount: totals[category]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
