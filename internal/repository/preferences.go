package repository

import (
	"context"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

// Preferences returns the singleton preferences record, defaulted when
// absent or corrupt.
func (r *Repository) Preferences(ctx context.Context) core.UserPreferences {
	prefs := core.DefaultPreferences()
	r.store.Get(ctx, storage.KeyPreferences, &prefs)
	return prefs
}

// SavePreferences overwrites the singleton preferences record.
func (r *Repository) SavePreferences(ctx context.Context, p core.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.Set(ctx, storage.KeyPreferences, p) {
		return ErrStorage
	}
	return nil
}
