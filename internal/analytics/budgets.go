package analytics

import (
	"time"

	"financetracker/internal/core"
)

// BudgetProgress pairs a budget with its consumption in the current period
// window. Spent and Percentage are never clamped in computation; only the
// display accessor caps at 100, so an over-budget delta stays recoverable.
type BudgetProgress struct {
	core.Budget
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
}

// DisplayPercentage clamps the consumption percentage to [0, 100].
func (p BudgetProgress) DisplayPercentage() float64 {
	if p.Percentage > 100 {
		return 100
	}
	if p.Percentage < 0 {
		return 0
	}
	return p.Percentage
}

// Exceeded reports whether spending reached or passed the limit.
func (p BudgetProgress) Exceeded() bool {
	return p.Percentage >= 100
}

// OverBy is the over-budget delta, zero while the budget holds.
func (p BudgetProgress) OverBy() float64 {
	if !p.Exceeded() {
		return 0
	}
	return p.Spent - p.Amount
}

// Progress sums the matching-category expenses dated at or after the
// period's window start.
func Progress(b core.Budget, txns []core.Transaction, now time.Time) BudgetProgress {
	start := WindowStart(b.Period, now)

	var spent float64
	for _, t := range txns {
		if t.Type != core.Expense || t.Category != b.Category {
			continue
		}
		if t.EffectiveDate().Before(start) {
			continue
		}
		spent += t.Amount
	}

	return BudgetProgress{
		Budget:     b,
		Spent:      spent,
		Percentage: spent / b.Amount * 100,
	}
}
