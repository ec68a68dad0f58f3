package api

import (
	"context"

	"financetracker/internal/core"
)

func (g *Gateway) GetUserPreferences(ctx context.Context) Response {
	g.pause()
	return g.respond(g.repo.Preferences(ctx), "Preferences retrieved successfully")
}

// UpdateUserPreferences overwrites the singleton preferences record.
func (g *Gateway) UpdateUserPreferences(ctx context.Context, prefs core.UserPreferences) Response {
	g.pause()

	if err := g.repo.SavePreferences(ctx, prefs); err != nil {
		return g.fail("Failed to save preferences")
	}
	return g.respond(prefs, "Preferences updated successfully")
}

func (g *Gateway) GetCategories(ctx context.Context) Response {
	g.pause()
	return g.respond(g.repo.Categories(ctx), "Categories retrieved successfully")
}

func (g *Gateway) CreateCategory(ctx context.Context, input core.Category) Response {
	g.pause()

	if err := validate.Struct(input); err != nil {
		return g.fail("Name and icon are required")
	}

	c, err := g.repo.AddCategory(ctx, input)
	if err != nil {
		return g.failOp("create category", err)
	}
	return g.respond(c, "Category created successfully")
}
