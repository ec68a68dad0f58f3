package core

import "time"

// Partial updates. A nil field leaves the stored value untouched; the
// repository shallow-merges the rest and bumps updatedAt.

type TransactionUpdate struct {
	Description *string          `json:"description,omitempty"`
	Amount      *float64         `json:"amount,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *Date            `json:"date,omitempty"`
}

type BudgetUpdate struct {
	Category *string       `json:"category,omitempty"`
	Amount   *float64      `json:"amount,omitempty"`
	Period   *BudgetPeriod `json:"period,omitempty"`
	Currency *string       `json:"currency,omitempty"`
}

type SavingsGoalUpdate struct {
	Name          *string  `json:"name,omitempty"`
	TargetAmount  *float64 `json:"targetAmount,omitempty"`
	TargetDate    *Date    `json:"targetDate,omitempty"`
	Description   *string  `json:"description,omitempty"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
}

type RecurringTransactionUpdate struct {
	Description   *string          `json:"description,omitempty"`
	Amount        *float64         `json:"amount,omitempty"`
	Type          *TransactionType `json:"type,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Frequency     *Frequency       `json:"frequency,omitempty"`
	LastExecuted  *time.Time       `json:"lastExecuted,omitempty"`
	NextExecution **time.Time      `json:"-"`
}

func (t *Transaction) Apply(u TransactionUpdate) {
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Currency != nil {
		t.Currency = *u.Currency
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
}

func (b *Budget) Apply(u BudgetUpdate) {
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.Amount != nil {
		b.Amount = *u.Amount
	}
	if u.Period != nil {
		b.Period = *u.Period
	}
	if u.Currency != nil {
		b.Currency = *u.Currency
	}
}

func (g *SavingsGoal) Apply(u SavingsGoalUpdate) {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.TargetAmount != nil {
		g.TargetAmount = *u.TargetAmount
	}
	if u.TargetDate != nil {
		g.TargetDate = *u.TargetDate
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.CurrentAmount != nil {
		g.CurrentAmount = *u.CurrentAmount
	}
}

func (r *RecurringTransaction) Apply(u RecurringTransactionUpdate) {
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Amount != nil {
		r.Amount = *u.Amount
	}
	if u.Type != nil {
		r.Type = *u.Type
	}
	if u.Currency != nil {
		r.Currency = *u.Currency
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.Frequency != nil {
		r.Frequency = *u.Frequency
	}
	if u.LastExecuted != nil {
		r.LastExecuted = u.LastExecuted
	}
	if u.NextExecution != nil {
		r.NextExecution = *u.NextExecution
	}
}
