package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

// NextExecution returns the next execution timestamp for a template of the
// given frequency, offset from now. The offset is a fixed 24h/7d for daily
// and weekly, and a calendar month/year for monthly and yearly. An
// unrecognized frequency yields nil; such a template never comes due.
func NextExecution(freq core.Frequency, now time.Time) *time.Time {
	var next time.Time
	switch freq {
	case core.Daily:
		next = now.Add(24 * time.Hour)
	case core.Weekly:
		next = now.Add(7 * 24 * time.Hour)
	case core.Monthly:
		next = now.AddDate(0, 1, 0)
	case core.Yearly:
		next = now.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &next
}

func (r *Repository) RecurringTransactions(ctx context.Context) []core.RecurringTransaction {
	var list []core.RecurringTransaction
	r.store.Get(ctx, storage.KeyRecurring, &list)
	return list
}

// AddRecurringTransaction persists a new template with lastExecuted unset
// and nextExecution computed from the frequency.
func (r *Repository) AddRecurringTransaction(ctx context.Context, rt core.RecurringTransaction) (core.RecurringTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	rt.ID = uuid.NewString()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	rt.LastExecuted = nil
	rt.NextExecution = NextExecution(rt.Frequency, now)

	if rt.NextExecution == nil {
		slog.WarnContext(ctx, "Recurring transaction has unrecognized frequency, will never execute",
			"id", rt.ID,
			"frequency", rt.Frequency)
	}

	list := append(r.RecurringTransactions(ctx), rt)
	if !r.store.Set(ctx, storage.KeyRecurring, list) {
		return core.RecurringTransaction{}, ErrStorage
	}
	return rt, nil
}

func (r *Repository) UpdateRecurringTransaction(ctx context.Context, id string, u core.RecurringTransactionUpdate) (*core.RecurringTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.RecurringTransactions(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Apply(u)
		list[i].UpdatedAt = r.now()
		if !r.store.Set(ctx, storage.KeyRecurring, list) {
			return nil, ErrStorage
		}
		rt := list[i]
		return &rt, nil
	}

	return nil, ErrNotFound
}

func (r *Repository) DeleteRecurringTransaction(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.RecurringTransactions(ctx)
	kept := list[:0]
	for _, rt := range list {
		if rt.ID != id {
			kept = append(kept, rt)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}

	if !r.store.Set(ctx, storage.KeyRecurring, kept) {
		return false, ErrStorage
	}
	return true, nil
}
