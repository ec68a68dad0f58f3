package notify

import (
	"fmt"

	"financetracker/internal/core"
)

// Convenience constructors for the notifications the application publishes.
// Errors and exceeded-budget warnings persist until dismissed; everything
// else auto-expires.

func (b *Broadcaster) Success(title, message string) int {
	return b.Publish(core.Notification{
		Type:     core.NotifySuccess,
		Title:    title,
		Message:  message,
		Duration: b.defaultTTL,
	})
}

func (b *Broadcaster) Error(title, message string) int {
	return b.Publish(core.Notification{
		Type:    core.NotifyError,
		Title:   title,
		Message: message,
	})
}

func (b *Broadcaster) Warning(title, message string) int {
	return b.Publish(core.Notification{
		Type:     core.NotifyWarning,
		Title:    title,
		Message:  message,
		Duration: b.defaultTTL,
	})
}

func (b *Broadcaster) Info(title, message string) int {
	return b.Publish(core.Notification{
		Type:     core.NotifyInfo,
		Title:    title,
		Message:  message,
		Duration: b.defaultTTL,
	})
}

func (b *Broadcaster) TransactionCreated(t core.Transaction) int {
	kind := "Expense"
	if t.Type == core.Income {
		kind = "Income"
	}
	return b.Success("Transaction Added",
		fmt.Sprintf("%s of %s %.2f added successfully", kind, t.Currency, t.Amount))
}

func (b *Broadcaster) TransactionUpdated(t core.Transaction) int {
	return b.Success("Transaction Updated",
		fmt.Sprintf("Transaction %q updated successfully", t.Description))
}

func (b *Broadcaster) TransactionDeleted() int {
	return b.Success("Transaction Deleted", "Transaction deleted successfully")
}

func (b *Broadcaster) BudgetCreated(budget core.Budget) int {
	return b.Success("Budget Created",
		fmt.Sprintf("Budget for %s (%s %.2f) created successfully",
			budget.Category, budget.Currency, budget.Amount))
}

// BudgetExceeded persists until dismissed.
func (b *Broadcaster) BudgetExceeded(budget core.Budget, spent float64) int {
	return b.Publish(core.Notification{
		Type:  core.NotifyWarning,
		Title: "Budget Exceeded",
		Message: fmt.Sprintf("You've exceeded your %s budget by %s %.2f",
			budget.Category, budget.Currency, spent-budget.Amount),
	})
}

func (b *Broadcaster) BudgetNearLimit(budget core.Budget, percentage float64) int {
	return b.Warning("Budget Alert",
		fmt.Sprintf("You've used %.1f%% of your %s budget", percentage, budget.Category))
}

func (b *Broadcaster) GoalCreated(goal core.SavingsGoal) int {
	return b.Success("Goal Created",
		fmt.Sprintf("Savings goal %q created with target of %s %.2f",
			goal.Name, goal.Currency, goal.TargetAmount))
}

func (b *Broadcaster) GoalAchieved(goal core.SavingsGoal) int {
	return b.Publish(core.Notification{
		Type:     core.NotifySuccess,
		Title:    "Goal Achieved",
		Message:  fmt.Sprintf("🎉 Congratulations! You've achieved your savings goal %q!", goal.Name),
		Duration: 2 * DefaultDuration,
	})
}

// MilestoneBand returns the 25/50/75/90 percent mark the percentage sits
// just past, or 0 when it lies outside every band.
func MilestoneBand(percentage float64) float64 {
	for _, milestone := range []float64{25, 50, 75, 90} {
		if percentage >= milestone && percentage < milestone+5 {
			return milestone
		}
	}
	return 0
}

// GoalMilestone publishes when progress sits just past a 25/50/75/90 percent
// mark; anywhere else it is a no-op and returns 0.
func (b *Broadcaster) GoalMilestone(goal core.SavingsGoal, percentage float64) int {
	milestone := MilestoneBand(percentage)
	if milestone == 0 {
		return 0
	}
	return b.Info("Goal Progress",
		fmt.Sprintf("You're %.0f%% of the way to your %q goal! Keep it up!", milestone, goal.Name))
}

// RecurringProcessed publishes only when at least one template fired.
func (b *Broadcaster) RecurringProcessed(count int) int {
	if count <= 0 {
		return 0
	}
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return b.Info("Recurring Transactions",
		fmt.Sprintf("%d recurring transaction%s processed automatically", count, plural))
}

func (b *Broadcaster) DataExported() int {
	return b.Success("Export Complete", "Your data has been exported successfully")
}

func (b *Broadcaster) DataImported() int {
	return b.Success("Import Complete", "Your data has been imported successfully")
}
