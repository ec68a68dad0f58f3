package api

import (
	"context"
	"errors"

	"financetracker/internal/core"
	"financetracker/internal/repository"
)

func (g *Gateway) GetSavingsGoals(ctx context.Context) Response {
	g.pause()
	return g.respond(g.repo.SavingsGoals(ctx), "Savings goals retrieved successfully")
}

func (g *Gateway) CreateSavingsGoal(ctx context.Context, input core.SavingsGoal) Response {
	g.pause()

	if err := validate.Struct(input); err != nil {
		return g.fail("Name, target amount, and target date are required")
	}

	goal, err := g.repo.AddSavingsGoal(ctx, input)
	if err != nil {
		return g.failOp("create savings goal", err)
	}
	return g.respond(goal, "Savings goal created successfully")
}

func (g *Gateway) UpdateSavingsGoal(ctx context.Context, id string, updates core.SavingsGoalUpdate) Response {
	g.pause()

	goal, err := g.repo.UpdateSavingsGoal(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return g.fail("Savings goal not found")
	}
	if err != nil {
		return g.failOp("update savings goal", err)
	}
	return g.respond(goal, "Savings goal updated successfully")
}

func (g *Gateway) DeleteSavingsGoal(ctx context.Context, id string) Response {
	g.pause()

	deleted, err := g.repo.DeleteSavingsGoal(ctx, id)
	if err != nil {
		return g.failOp("delete savings goal", err)
	}
	if !deleted {
		return g.fail("Savings goal not found")
	}
	return g.respond(nil, "Savings goal deleted successfully")
}
