// Package storage provides key-value persistence for the six named
// collections. Values are stored as serialized JSON documents; the store
// neither understands nor validates their contents.
package storage

import "context"

// Collection keys. Every persisted document lives under one of these.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeySavingsGoals = "savings_goals"
	KeyPreferences  = "preferences"
	KeyCategories   = "categories"
	KeyRecurring    = "recurring"
)

// Store is the persistence port. Faults never escape this boundary: a failed
// write reports false, and Get treats absent or corrupt documents as absent
// so the caller falls back to its default. There are no transactions across
// keys; multi-collection writes are not atomic.
type Store interface {
	// Set serializes value and persists it under key, reporting success.
	Set(ctx context.Context, key string, value any) bool

	// Get deserializes the document under key into dest and reports whether
	// dest was populated.
	Get(ctx context.Context, key string, dest any) bool

	// Remove deletes the entry, tolerating absence.
	Remove(ctx context.Context, key string)
}
