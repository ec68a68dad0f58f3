package api

import (
	"context"
	"errors"

	"financetracker/internal/core"
	"financetracker/internal/repository"
)

func (g *Gateway) GetBudgets(ctx context.Context) Response {
	g.pause()
	return g.respond(g.repo.Budgets(ctx), "Budgets retrieved successfully")
}

func (g *Gateway) CreateBudget(ctx context.Context, input core.Budget) Response {
	g.pause()

	if err := validate.Struct(input); err != nil {
		return g.fail("Category and amount are required")
	}

	b, err := g.repo.AddBudget(ctx, input)
	if err != nil {
		return g.failOp("create budget", err)
	}
	return g.respond(b, "Budget created successfully")
}

func (g *Gateway) UpdateBudget(ctx context.Context, id string, updates core.BudgetUpdate) Response {
	g.pause()

	b, err := g.repo.UpdateBudget(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return g.fail("Budget not found")
	}
	if err != nil {
		return g.failOp("update budget", err)
	}
	return g.respond(b, "Budget updated successfully")
}

func (g *Gateway) DeleteBudget(ctx context.Context, id string) Response {
	g.pause()

	deleted, err := g.repo.DeleteBudget(ctx, id)
	if err != nil {
		return g.failOp("delete budget", err)
	}
	if !deleted {
		return g.fail("Budget not found")
	}
	return g.respond(nil, "Budget deleted successfully")
}
