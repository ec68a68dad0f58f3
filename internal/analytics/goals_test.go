package analytics

import (
	"testing"
	"time"

	"financetracker/internal/core"
)

func TestGoalState(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		goal     core.SavingsGoal
		wantPct  float64
		wantDays int
		achieved bool
	}{
		{
			name: "halfway there",
			goal: core.SavingsGoal{
				TargetAmount:  1000,
				CurrentAmount: 500,
				TargetDate:    core.NewDate(2024, 3, 11),
			},
			wantPct:  50,
			wantDays: 10,
			achieved: false,
		},
		{
			name: "deposits sum past the target",
			goal: core.SavingsGoal{
				TargetAmount:  500,
				CurrentAmount: 500,
				TargetDate:    core.NewDate(2024, 6, 1),
			},
			wantPct:  100,
			wantDays: 92,
			achieved: true,
		},
		{
			name: "target date passed",
			goal: core.SavingsGoal{
				TargetAmount:  1000,
				CurrentAmount: 100,
				TargetDate:    core.NewDate(2024, 2, 25),
			},
			wantPct:  10,
			wantDays: -5,
			achieved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalState(tt.goal, now)
			if got.Percentage != tt.wantPct {
				t.Errorf("GoalState() percentage = %v, want %v", got.Percentage, tt.wantPct)
			}
			if got.DaysRemaining != tt.wantDays {
				t.Errorf("GoalState() daysRemaining = %d, want %d", got.DaysRemaining, tt.wantDays)
			}
			if got.Achieved() != tt.achieved {
				t.Errorf("Achieved() = %v, want %v", got.Achieved(), tt.achieved)
			}
		})
	}
}

func TestGoalProgress_DisplayPercentage(t *testing.T) {
	p := GoalProgress{Percentage: 130}
	if got := p.DisplayPercentage(); got != 100 {
		t.Errorf("DisplayPercentage() = %v, want capped at 100", got)
	}

	p = GoalProgress{Percentage: 60}
	if got := p.DisplayPercentage(); got != 60 {
		t.Errorf("DisplayPercentage() = %v, want 60", got)
	}
}
