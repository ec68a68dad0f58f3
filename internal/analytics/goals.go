package analytics

import (
	"math"
	"time"

	"financetracker/internal/core"
)

// GoalProgress pairs a savings goal with its derived completion state.
type GoalProgress struct {
	core.SavingsGoal
	Percentage float64 `json:"percentage"`
	// DaysRemaining is negative once the target date has passed.
	DaysRemaining int `json:"daysRemaining"`
}

// DisplayPercentage caps completion at 100 for rendering; the underlying
// currentAmount is never capped in storage.
func (p GoalProgress) DisplayPercentage() float64 {
	return math.Min(p.Percentage, 100)
}

// Achieved reports whether the goal target has been reached.
func (p GoalProgress) Achieved() bool {
	return p.Percentage >= 100
}

// GoalState derives the completion percentage and the whole days left until
// the target date, rounded up.
func GoalState(g core.SavingsGoal, now time.Time) GoalProgress {
	days := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
	return GoalProgress{
		SavingsGoal:   g,
		Percentage:    g.CurrentAmount / g.TargetAmount * 100,
		DaysRemaining: days,
	}
}
