package repository

import (
	"context"

	"financetracker/internal/core"
	"financetracker/internal/storage"
)

// Categories returns the stored category set, or the fixed default seed when
// none has been persisted yet. The seed is not written back; the collection
// is first persisted when a custom category is added.
func (r *Repository) Categories(ctx context.Context) []core.Category {
	var list []core.Category
	if !r.store.Get(ctx, storage.KeyCategories, &list) {
		return core.DefaultCategories()
	}
	return list
}

// AddCategory appends a category, deriving a slug id from the name when the
// caller did not choose one.
func (r *Repository) AddCategory(ctx context.Context, c core.Category) (core.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = core.Slugify(c.Name)
	}
	if c.Type == "" {
		c.Type = core.CategoryExpense
	}
	c.CreatedAt = r.now()

	list := append(r.Categories(ctx), c)
	if !r.store.Set(ctx, storage.KeyCategories, list) {
		return core.Category{}, ErrStorage
	}
	return c, nil
}
