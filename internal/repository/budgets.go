package repository

import (
	"context"

	"github.com/google/uuid"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

func (r *Repository) Budgets(ctx context.Context) []core.Budget {
	var list []core.Budget
	r.store.Get(ctx, storage.KeyBudgets, &list)
	return list
}

func (r *Repository) AddBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Period == "" {
		b.Period = core.Month
	}

	list := append(r.Budgets(ctx), b)
	if !r.store.Set(ctx, storage.KeyBudgets, list) {
		return core.Budget{}, ErrStorage
	}
	return b, nil
}

func (r *Repository) UpdateBudget(ctx context.Context, id string, u core.BudgetUpdate) (*core.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.Budgets(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Apply(u)
		list[i].UpdatedAt = r.now()
		if !r.store.Set(ctx, storage.KeyBudgets, list) {
			return nil, ErrStorage
		}
		b := list[i]
		return &b, nil
	}

	return nil, ErrNotFound
}

func (r *Repository) DeleteBudget(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.Budgets(ctx)
	kept := list[:0]
	for _, b := range list {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}

	if !r.store.Set(ctx, storage.KeyBudgets, kept) {
		return false, ErrStorage
	}
	return true, nil
}
