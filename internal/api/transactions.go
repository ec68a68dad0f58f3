package api

import (
	"context"
	"errors"
	"sort"
	"strings"

	"financetracker/internal/core"
	"financetracker/internal/repository"
)

// TransactionFilters narrows a transaction listing. Zero-valued fields are
// ignored.
type TransactionFilters struct {
	Category  string
	Type      core.TransactionType
	StartDate core.Date
	EndDate   core.Date
	Search    string
}

func (f TransactionFilters) matches(t core.Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if !f.StartDate.IsZero() && t.EffectiveDate().Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && t.EffectiveDate().After(f.EndDate) {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// GetTransactions lists transactions matching the filters, newest first.
func (g *Gateway) GetTransactions(ctx context.Context, filters TransactionFilters) Response {
	g.pause()

	all := g.repo.Transactions(ctx)
	matched := make([]core.Transaction, 0, len(all))
	for _, t := range all {
		if filters.matches(t) {
			matched = append(matched, t)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[j].EffectiveDate().Before(matched[i].EffectiveDate())
	})

	return g.respond(matched, "Transactions retrieved successfully")
}

func (g *Gateway) CreateTransaction(ctx context.Context, input core.Transaction) Response {
	g.pause()

	if err := validate.Struct(input); err != nil {
		return g.fail("Description and amount are required")
	}

	t, err := g.repo.AddTransaction(ctx, input)
	if err != nil {
		return g.failOp("create transaction", err)
	}
	return g.respond(t, "Transaction created successfully")
}

func (g *Gateway) UpdateTransaction(ctx context.Context, id string, updates core.TransactionUpdate) Response {
	g.pause()

	t, err := g.repo.UpdateTransaction(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return g.fail("Transaction not found")
	}
	if err != nil {
		return g.failOp("update transaction", err)
	}
	return g.respond(t, "Transaction updated successfully")
}

func (g *Gateway) DeleteTransaction(ctx context.Context, id string) Response {
	g.pause()

	deleted, err := g.repo.DeleteTransaction(ctx, id)
	if err != nil {
		return g.failOp("delete transaction", err)
	}
	if !deleted {
		return g.fail("Transaction not found")
	}
	return g.respond(nil, "Transaction deleted successfully")
}
