package analytics

import (
	"testing"
	"time"

	"financetracker/internal/core"
)

func TestBalance(t *testing.T) {
	txns := []core.Transaction{
		{Type: core.Income, Amount: 1000},
		{Type: core.Expense, Amount: 300},
		{Type: core.Expense, Amount: 150},
	}

	if got := Balance(txns); got != 550 {
		t.Errorf("Balance() = %v, want 550", got)
	}

	// Same set, different order, same result.
	reversed := []core.Transaction{txns[2], txns[0], txns[1]}
	if got := Balance(reversed); got != 550 {
		t.Errorf("Balance() reordered = %v, want 550", got)
	}
}

func TestBalance_Empty(t *testing.T) {
	if got := Balance(nil); got != 0 {
		t.Errorf("Balance(nil) = %v, want 0", got)
	}
}

func TestSumByType(t *testing.T) {
	txns := []core.Transaction{
		{Type: core.Income, Amount: 1000},
		{Type: core.Income, Amount: 200},
		{Type: core.Expense, Amount: 300},
	}

	if got := SumByType(txns, core.Income); got != 1200 {
		t.Errorf("SumByType(income) = %v, want 1200", got)
	}
	if got := SumByType(txns, core.Expense); got != 300 {
		t.Errorf("SumByType(expense) = %v, want 300", got)
	}
}

func TestWindowStart(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period core.BudgetPeriod
		now    time.Time
		want   core.Date
	}{
		{
			name:   "month starts on day 1",
			period: core.Month,
			now:    now,
			want:   core.NewDate(2024, 3, 1),
		},
		{
			name:   "week starts on the preceding Sunday",
			period: core.Week,
			now:    now,
			want:   core.NewDate(2024, 3, 10),
		},
		{
			name:   "week on a Sunday starts that day",
			period: core.Week,
			now:    time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
			want:   core.NewDate(2024, 3, 10),
		},
		{
			name:   "year starts on January 1",
			period: core.Year,
			now:    now,
			want:   core.NewDate(2024, 1, 1),
		},
		{
			name:   "unknown period falls back to January 1",
			period: core.BudgetPeriod("quarter"),
			now:    now,
			want:   core.NewDate(2024, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowStart(tt.period, tt.now)
			if !got.Equal(tt.want.Time) {
				t.Errorf("WindowStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expenses float64
		want     float64
	}{
		{"saves half", 2000, 1000, 50},
		{"spends everything", 1000, 1000, 0},
		{"overspends goes negative", 1000, 1500, -50},
		{"no income", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SavingsRate(tt.income, tt.expenses); got != tt.want {
				t.Errorf("SavingsRate(%v, %v) = %v, want %v", tt.income, tt.expenses, got, tt.want)
			}
		})
	}
}
