package repository

import (
	"context"

	"github.com/google/uuid"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

func (r *Repository) SavingsGoals(ctx context.Context) []core.SavingsGoal {
	var list []core.SavingsGoal
	r.store.Get(ctx, storage.KeySavingsGoals, &list)
	return list
}

// AddSavingsGoal persists a new goal. Progress always starts at zero, no
// matter what the caller supplied.
func (r *Repository) AddSavingsGoal(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	g.ID = uuid.NewString()
	g.CurrentAmount = 0
	g.CreatedAt = now
	g.UpdatedAt = now

	list := append(r.SavingsGoals(ctx), g)
	if !r.store.Set(ctx, storage.KeySavingsGoals, list) {
		return core.SavingsGoal{}, ErrStorage
	}
	return g, nil
}

func (r *Repository) UpdateSavingsGoal(ctx context.Context, id string, u core.SavingsGoalUpdate) (*core.SavingsGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.SavingsGoals(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Apply(u)
		// currentAmount may exceed the target in storage, but never
		// goes negative.
		if list[i].CurrentAmount < 0 {
			list[i].CurrentAmount = 0
		}
		list[i].UpdatedAt = r.now()
		if !r.store.Set(ctx, storage.KeySavingsGoals, list) {
			return nil, ErrStorage
		}
		g := list[i]
		return &g, nil
	}

	return nil, ErrNotFound
}

func (r *Repository) DeleteSavingsGoal(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.SavingsGoals(ctx)
	kept := list[:0]
	for _, g := range list {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}

	if !r.store.Set(ctx, storage.KeySavingsGoals, kept) {
		return false, ErrStorage
	}
	return true, nil
}
