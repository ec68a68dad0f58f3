package core

import "time"

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Week  BudgetPeriod = "week"
	Month BudgetPeriod = "month"
	Year  BudgetPeriod = "year"
)

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

type (
	TransactionType string
	BudgetPeriod    string
	Frequency       string

	// Transaction is a single recorded income or expense. Amounts are
	// positive; the type decides the sign in aggregate computations.
	Transaction struct {
		ID          string          `json:"id"`
		Description string          `json:"description" validate:"required,notblank"`
		Amount      float64         `json:"amount" validate:"required,gt=0"`
		Type        TransactionType `json:"type"`
		Currency    string          `json:"currency"`
		Category    string          `json:"category"`
		Date        Date            `json:"date"`
		IsRecurring bool            `json:"isRecurring,omitempty"`
		RecurringID string          `json:"recurringId,omitempty"`
		CreatedAt   time.Time       `json:"createdAt"`
		UpdatedAt   time.Time       `json:"updatedAt"`
	}

	// Budget is a spending limit for one category over a rolling period.
	// Spent and percentage are derived, never stored.
	Budget struct {
		ID        string       `json:"id"`
		Category  string       `json:"category" validate:"required,notblank"`
		Amount    float64      `json:"amount" validate:"required,gt=0"`
		Period    BudgetPeriod `json:"period"`
		Currency  string       `json:"currency"`
		CreatedAt time.Time    `json:"createdAt"`
		UpdatedAt time.Time    `json:"updatedAt"`
	}

	SavingsGoal struct {
		ID            string    `json:"id"`
		Name          string    `json:"name" validate:"required,notblank"`
		TargetAmount  float64   `json:"targetAmount" validate:"required,gt=0"`
		TargetDate    Date      `json:"targetDate" validate:"required"`
		Description   string    `json:"description,omitempty"`
		Currency      string    `json:"currency"`
		CurrentAmount float64   `json:"currentAmount"`
		CreatedAt     time.Time `json:"createdAt"`
		UpdatedAt     time.Time `json:"updatedAt"`
	}

	// RecurringTransaction is the template a concrete Transaction is
	// materialized from. NextExecution is nil only when the frequency is
	// unrecognized; such a template is never due again.
	RecurringTransaction struct {
		ID            string          `json:"id"`
		Description   string          `json:"description" validate:"required,notblank"`
		Amount        float64         `json:"amount" validate:"required,gt=0"`
		Type          TransactionType `json:"type"`
		Currency      string          `json:"currency"`
		Category      string          `json:"category"`
		Frequency     Frequency       `json:"frequency" validate:"required"`
		LastExecuted  *time.Time      `json:"lastExecuted"`
		NextExecution *time.Time      `json:"nextExecution"`
		CreatedAt     time.Time       `json:"createdAt"`
		UpdatedAt     time.Time       `json:"updatedAt"`
	}

	UserPreferences struct {
		DarkMode        bool   `json:"darkMode"`
		Currency        string `json:"currency"`
		Language        string `json:"language"`
		Notifications   bool   `json:"notifications"`
		DefaultCategory string `json:"defaultCategory"`
	}

	Category struct {
		ID        string       `json:"id"`
		Name      string       `json:"name" validate:"required,notblank"`
		Icon      string       `json:"icon" validate:"required"`
		Type      CategoryKind `json:"type"`
		CreatedAt time.Time    `json:"createdAt,omitempty"`
	}

	CategoryKind string

	// MonthlyReport summarizes one calendar month of transactions.
	MonthlyReport struct {
		Income            float64            `json:"income"`
		Expenses          float64            `json:"expenses"`
		Balance           float64            `json:"balance"`
		CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
		TransactionCount  int                `json:"transactionCount"`
		SavingsRate       float64            `json:"savingsRate"`
	}
)

const (
	CategoryExpense CategoryKind = "expense"
	CategoryIncome  CategoryKind = "income"
	CategoryBoth    CategoryKind = "both"
)

// EffectiveDate returns the transaction's calendar date, falling back to the
// creation day for records stored without one.
func (t Transaction) EffectiveDate() Date {
	if t.Date.IsZero() {
		return Today(t.CreatedAt)
	}
	return t.Date
}

// IsValid reports whether the transaction type is one of the two known kinds.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// IsValid reports whether the period is week, month or year.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case Week, Month, Year:
		return true
	}
	return false
}

// IsValid reports whether the frequency is one of the supported repetition
// kinds. An invalid frequency is not an error at creation time: the template
// is stored with a nil next execution and simply never comes due.
func (f Frequency) IsValid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}
