package repository

import (
	"context"

	"financetracker/internal/core"
)

// MonthlyReport sums the transactions whose date lies within the given
// calendar month, bounds inclusive. Month is 1-12. The category breakdown
// covers expenses only.
func (r *Repository) MonthlyReport(ctx context.Context, year, month int) core.MonthlyReport {
	start := core.NewDate(year, month, 1)
	end := core.Date{Time: start.AddDate(0, 1, -1)}

	report := core.MonthlyReport{CategoryBreakdown: make(map[string]float64)}

	for _, t := range r.Transactions(ctx) {
		if !t.EffectiveDate().Within(start, end) {
			continue
		}
		report.TransactionCount++
		switch t.Type {
		case core.Income:
			report.Income += t.Amount
		case core.Expense:
			report.Expenses += t.Amount
			report.CategoryBreakdown[t.Category] += t.Amount
		}
	}

	report.Balance = report.Income - report.Expenses
	if report.Income > 0 {
		report.SavingsRate = (report.Income - report.Expenses) / report.Income * 100
	}

	return report
}

// TransactionsByDateRange returns transactions whose date lies in
// [start, end], bounds inclusive.
func (r *Repository) TransactionsByDateRange(ctx context.Context, start, end core.Date) []core.Transaction {
	var out []core.Transaction
	for _, t := range r.Transactions(ctx) {
		if t.EffectiveDate().Within(start, end) {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsByCategory returns transactions with the given category key.
func (r *Repository) TransactionsByCategory(ctx context.Context, category string) []core.Transaction {
	var out []core.Transaction
	for _, t := range r.Transactions(ctx) {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
