package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

// Transactions returns the full transaction collection, oldest first.
func (r *Repository) Transactions(ctx context.Context) []core.Transaction {
	var list []core.Transaction
	r.store.Get(ctx, storage.KeyTransactions, &list)
	return list
}

// AddTransaction assigns an id, stamps both timestamps and persists the
// record appended to the collection.
func (r *Repository) AddTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	list := append(r.Transactions(ctx), t)
	if !r.store.Set(ctx, storage.KeyTransactions, list) {
		return core.Transaction{}, ErrStorage
	}

	slog.DebugContext(ctx, "Transaction saved",
		"id", t.ID,
		"type", t.Type,
		"amount", t.Amount,
		"category", t.Category)

	return t, nil
}

// UpdateTransaction shallow-merges updates over the stored record and bumps
// updatedAt. An absent id yields ErrNotFound; nothing is created.
func (r *Repository) UpdateTransaction(ctx context.Context, id string, u core.TransactionUpdate) (*core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.Transactions(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Apply(u)
		list[i].UpdatedAt = r.now()
		if !r.store.Set(ctx, storage.KeyTransactions, list) {
			return nil, ErrStorage
		}
		t := list[i]
		return &t, nil
	}

	return nil, ErrNotFound
}

// DeleteTransaction removes the matching record and reports whether a
// removal actually occurred.
func (r *Repository) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.Transactions(ctx)
	kept := list[:0]
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}

	if !r.store.Set(ctx, storage.KeyTransactions, kept) {
		return false, ErrStorage
	}
	return true, nil
}
