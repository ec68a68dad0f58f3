// Package backend defines the port between the application orchestrator and
// the data layer. Everything behind the Backend interface speaks the
// {success, data, message, timestamp} envelope, so an in-memory fake, the
// local SQLite store and a future real network backend are interchangeable.
package backend

import (
	"context"
	"time"

	"financetracker/internal/api"
	"financetracker/internal/core"
	"financetracker/internal/repository"
)

// Backend is the full simulated-request surface.
type Backend interface {
	GetTransactions(ctx context.Context, filters api.TransactionFilters) api.Response
	CreateTransaction(ctx context.Context, input core.Transaction) api.Response
	UpdateTransaction(ctx context.Context, id string, updates core.TransactionUpdate) api.Response
	DeleteTransaction(ctx context.Context, id string) api.Response

	GetBudgets(ctx context.Context) api.Response
	CreateBudget(ctx context.Context, input core.Budget) api.Response
	UpdateBudget(ctx context.Context, id string, updates core.BudgetUpdate) api.Response
	DeleteBudget(ctx context.Context, id string) api.Response

	GetSavingsGoals(ctx context.Context) api.Response
	CreateSavingsGoal(ctx context.Context, input core.SavingsGoal) api.Response
	UpdateSavingsGoal(ctx context.Context, id string, updates core.SavingsGoalUpdate) api.Response
	DeleteSavingsGoal(ctx context.Context, id string) api.Response

	GetUserPreferences(ctx context.Context) api.Response
	UpdateUserPreferences(ctx context.Context, prefs core.UserPreferences) api.Response

	GetCategories(ctx context.Context) api.Response
	CreateCategory(ctx context.Context, input core.Category) api.Response

	GetRecurringTransactions(ctx context.Context) api.Response
	CreateRecurringTransaction(ctx context.Context, input core.RecurringTransaction) api.Response
	UpdateRecurringTransaction(ctx context.Context, id string, updates core.RecurringTransactionUpdate) api.Response
	DeleteRecurringTransaction(ctx context.Context, id string) api.Response
	ProcessDueRecurringTransactions(ctx context.Context) api.Response

	GetMonthlyReport(ctx context.Context, year, month int) api.Response
	GetDashboardStats(ctx context.Context) api.Response
	GetInsights(ctx context.Context) api.Response

	ExportData(ctx context.Context) api.Response
	ImportData(ctx context.Context, doc repository.ExportDocument) api.Response
	ImportJSON(ctx context.Context, raw []byte) api.Response
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// BackendResult pairs the backend with its optional cleanup.
type BackendResult struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// Simulated network latency applied to every gateway operation.
	RequestDelay time.Duration
}

type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer.
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid.
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
