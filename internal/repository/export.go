package repository

import (
	"context"
	"log/slog"
	"time"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

// ExportVersion identifies the export document layout.
const ExportVersion = "2.0"

// ExportDocument is the full-backup wire shape. On import, each present key
// overwrites its collection wholesale; absent keys (nil slices, nil
// preferences) leave the stored collection untouched.
type ExportDocument struct {
	Transactions          []core.Transaction          `json:"transactions"`
	Budgets               []core.Budget               `json:"budgets"`
	SavingsGoals          []core.SavingsGoal          `json:"savingsGoals"`
	Preferences           *core.UserPreferences       `json:"preferences,omitempty"`
	Categories            []core.Category             `json:"categories"`
	RecurringTransactions []core.RecurringTransaction `json:"recurringTransactions"`
	ExportDate            time.Time                   `json:"exportDate"`
	Version               string                      `json:"version"`
}

// ExportAll snapshots the six collections into one document.
func (r *Repository) ExportAll(ctx context.Context) ExportDocument {
	prefs := r.Preferences(ctx)
	return ExportDocument{
		Transactions:          nonNil(r.Transactions(ctx)),
		Budgets:               nonNil(r.Budgets(ctx)),
		SavingsGoals:          nonNil(r.SavingsGoals(ctx)),
		Preferences:           &prefs,
		Categories:            nonNil(r.Categories(ctx)),
		RecurringTransactions: nonNil(r.RecurringTransactions(ctx)),
		ExportDate:            r.now(),
		Version:               ExportVersion,
	}
}

// Import merges the document collection by collection. There is no
// atomicity across keys: a write failure stops the merge, leaving earlier
// collections replaced and later ones untouched.
func (r *Repository) Import(ctx context.Context, doc ExportDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	writes := []struct {
		key   string
		value any
		skip  bool
	}{
		{storage.KeyTransactions, doc.Transactions, doc.Transactions == nil},
		{storage.KeyBudgets, doc.Budgets, doc.Budgets == nil},
		{storage.KeySavingsGoals, doc.SavingsGoals, doc.SavingsGoals == nil},
		{storage.KeyPreferences, doc.Preferences, doc.Preferences == nil},
		{storage.KeyCategories, doc.Categories, doc.Categories == nil},
		{storage.KeyRecurring, doc.RecurringTransactions, doc.RecurringTransactions == nil},
	}

	for _, w := range writes {
		if w.skip {
			continue
		}
		if !r.store.Set(ctx, w.key, w.value) {
			slog.ErrorContext(ctx, "Import aborted mid-merge", "key", w.key)
			return ErrStorage
		}
	}

	return nil
}

// ClearAll removes every collection document.
func (r *Repository) ClearAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range []string{
		storage.KeyTransactions,
		storage.KeyBudgets,
		storage.KeySavingsGoals,
		storage.KeyPreferences,
		storage.KeyCategories,
		storage.KeyRecurring,
	} {
		r.store.Remove(ctx, key)
	}
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
