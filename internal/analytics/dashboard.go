package analytics

import (
	"time"

	"financetracker/internal/core"
)

// DashboardStats aggregates the current calendar month plus per-budget and
// per-goal progress lists.
type DashboardStats struct {
	Balance          float64          `json:"balance"`
	TotalIncome      float64          `json:"totalIncome"`
	TotalExpenses    float64          `json:"totalExpenses"`
	TransactionCount int              `json:"transactionCount"`
	BudgetProgress   []BudgetProgress `json:"budgetProgress"`
	GoalsProgress    []GoalProgress   `json:"goalsProgress"`
	SavingsRate      float64          `json:"savingsRate"`
}

// Dashboard computes the stats over the month containing now.
func Dashboard(txns []core.Transaction, budgets []core.Budget, goals []core.SavingsGoal, now time.Time) DashboardStats {
	startOfMonth := core.NewDate(now.Year(), int(now.Month()), 1)

	var current []core.Transaction
	for _, t := range txns {
		if !t.EffectiveDate().Before(startOfMonth) {
			current = append(current, t)
		}
	}

	income := SumByType(current, core.Income)
	expenses := SumByType(current, core.Expense)

	stats := DashboardStats{
		Balance:          income - expenses,
		TotalIncome:      income,
		TotalExpenses:    expenses,
		TransactionCount: len(current),
		BudgetProgress:   make([]BudgetProgress, 0, len(budgets)),
		GoalsProgress:    make([]GoalProgress, 0, len(goals)),
		SavingsRate:      SavingsRate(income, expenses),
	}

	for _, b := range budgets {
		stats.BudgetProgress = append(stats.BudgetProgress, Progress(b, txns, now))
	}
	for _, g := range goals {
		stats.GoalsProgress = append(stats.GoalsProgress, GoalState(g, now))
	}

	return stats
}
