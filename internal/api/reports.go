package api

import (
	"context"

	"financetracker/internal/analytics"
)

// GetMonthlyReport summarizes one calendar month; month is 1-12.
func (g *Gateway) GetMonthlyReport(ctx context.Context, year, month int) Response {
	g.pause()
	return g.respond(g.repo.MonthlyReport(ctx, year, month), "Monthly report generated successfully")
}

// GetDashboardStats computes the current-month aggregates plus budget and
// goal progress lists.
func (g *Gateway) GetDashboardStats(ctx context.Context) Response {
	g.pause()

	stats := analytics.Dashboard(
		g.repo.Transactions(ctx),
		g.repo.Budgets(ctx),
		g.repo.SavingsGoals(ctx),
		g.repo.Now(),
	)
	return g.respond(stats, "Dashboard stats retrieved successfully")
}

// GetInsights compares the current month against the previous one and ranks
// the top spending categories.
func (g *Gateway) GetInsights(ctx context.Context) Response {
	g.pause()

	txns := g.repo.Transactions(ctx)
	now := g.repo.Now()
	insights := struct {
		Comparison    analytics.Comparison      `json:"comparison"`
		TopCategories []analytics.CategoryTotal `json:"topCategories"`
	}{
		Comparison:    analytics.MonthlyComparison(txns, now),
		TopCategories: analytics.TopSpendingCategories(txns, now, 3),
	}
	return g.respond(insights, "Insights retrieved successfully")
}
