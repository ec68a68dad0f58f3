// Package services provides the orchestration layer between the repository,
// the aggregation functions and the notification broadcaster.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"financetracker/internal/core"
	"financetracker/internal/repository"
)

// RecurringProcessor materializes concrete transactions from due recurring
// templates.
type RecurringProcessor struct {
	repo *repository.Repository
}

func NewRecurringProcessor(repo *repository.Repository) *RecurringProcessor {
	return &RecurringProcessor{repo: repo}
}

// isDue reports whether a template's next execution has arrived. Templates
// with a nil next execution (unrecognized frequency) are never due.
func isDue(rt core.RecurringTransaction, now time.Time) bool {
	return rt.NextExecution != nil && !rt.NextExecution.After(now)
}

// ProcessDue scans all templates and materializes one transaction per due
// template in a single pass. The new transaction is dated at the processing
// day, and the template's next execution is recomputed from now rather than
// from the missed slot, so a template left unprocessed for several periods
// produces a single catch-up transaction per call. A fault partway through
// stops the pass: earlier templates stay processed, later ones wait for the
// next call.
func (p *RecurringProcessor) ProcessDue(ctx context.Context, now time.Time) ([]core.Transaction, error) {
	templates := p.repo.RecurringTransactions(ctx)

	slog.InfoContext(ctx, "Processing recurring transactions",
		"total", len(templates),
		"processing_date", now.Format("2006-01-02"))

	created := make([]core.Transaction, 0)

	for _, rt := range templates {
		if !isDue(rt, now) {
			continue
		}

		txn, err := p.repo.AddTransaction(ctx, core.Transaction{
			Description: rt.Description,
			Amount:      rt.Amount,
			Type:        rt.Type,
			Currency:    rt.Currency,
			Category:    rt.Category,
			Date:        core.Today(now),
			IsRecurring: true,
			RecurringID: rt.ID,
		})
		if err != nil {
			return created, fmt.Errorf("materialize recurring transaction %s: %w", rt.ID, err)
		}
		created = append(created, txn)

		next := repository.NextExecution(rt.Frequency, now)
		lastExecuted := now
		if _, err := p.repo.UpdateRecurringTransaction(ctx, rt.ID, core.RecurringTransactionUpdate{
			LastExecuted:  &lastExecuted,
			NextExecution: &next,
		}); err != nil {
			return created, fmt.Errorf("advance recurring transaction %s: %w", rt.ID, err)
		}

		slog.InfoContext(ctx, "Created transaction from recurring template",
			"recurring_id", rt.ID,
			"transaction_id", txn.ID,
			"description", rt.Description,
			"amount", rt.Amount,
			"frequency", rt.Frequency)
	}

	slog.InfoContext(ctx, "Recurring transaction processing complete",
		"processed", len(created),
		"total_checked", len(templates))

	return created, nil
}
