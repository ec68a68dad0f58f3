package api

import (
	"context"
	"errors"
	"fmt"

	"financetracker/internal/core"
	"financetracker/internal/repository"
)

func (g *Gateway) GetRecurringTransactions(ctx context.Context) Response {
	g.pause()
	return g.respond(g.repo.RecurringTransactions(ctx), "Recurring transactions retrieved successfully")
}

func (g *Gateway) CreateRecurringTransaction(ctx context.Context, input core.RecurringTransaction) Response {
	g.pause()

	if err := validate.Struct(input); err != nil {
		return g.fail("Description, amount, and frequency are required")
	}

	rt, err := g.repo.AddRecurringTransaction(ctx, input)
	if err != nil {
		return g.failOp("create recurring transaction", err)
	}
	return g.respond(rt, "Recurring transaction created successfully")
}

func (g *Gateway) UpdateRecurringTransaction(ctx context.Context, id string, updates core.RecurringTransactionUpdate) Response {
	g.pause()

	rt, err := g.repo.UpdateRecurringTransaction(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return g.fail("Recurring transaction not found")
	}
	if err != nil {
		return g.failOp("update recurring transaction", err)
	}
	return g.respond(rt, "Recurring transaction updated successfully")
}

func (g *Gateway) DeleteRecurringTransaction(ctx context.Context, id string) Response {
	g.pause()

	deleted, err := g.repo.DeleteRecurringTransaction(ctx, id)
	if err != nil {
		return g.failOp("delete recurring transaction", err)
	}
	if !deleted {
		return g.fail("Recurring transaction not found")
	}
	return g.respond(nil, "Recurring transaction deleted successfully")
}

// ProcessDueRecurringTransactions materializes every due template in one
// pass and returns the newly created transactions.
func (g *Gateway) ProcessDueRecurringTransactions(ctx context.Context) Response {
	g.pause()

	created, err := g.processor.ProcessDue(ctx, g.repo.Now())
	if err != nil {
		return g.failOp("process recurring transactions", err)
	}
	return g.respond(created, fmt.Sprintf("Processed %d recurring transactions", len(created)))
}
