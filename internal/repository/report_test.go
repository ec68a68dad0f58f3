package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"financetracker/internal/core"
)

func seedMarchTransactions(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()

	records := []core.Transaction{
		{Description: "Salary", Amount: 3000, Type: core.Income, Category: "salary", Date: core.NewDate(2024, 3, 1)},
		{Description: "Rent", Amount: 900, Type: core.Expense, Category: "bills", Date: core.NewDate(2024, 3, 2)},
		{Description: "Groceries", Amount: 250, Type: core.Expense, Category: "food", Date: core.NewDate(2024, 3, 31)},
		{Description: "Dinner", Amount: 50, Type: core.Expense, Category: "food", Date: core.NewDate(2024, 4, 1)},
		{Description: "Bonus", Amount: 500, Type: core.Income, Category: "salary", Date: core.NewDate(2024, 2, 29)},
	}
	for _, r := range records {
		if _, err := repo.AddTransaction(ctx, r); err != nil {
			t.Fatalf("AddTransaction(%q) error = %v", r.Description, err)
		}
	}
}

func TestMonthlyReport(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	seedMarchTransactions(t, repo)

	report := repo.MonthlyReport(ctx, 2024, 3)

	if report.Income != 3000 {
		t.Errorf("MonthlyReport() income = %v, want 3000", report.Income)
	}
	if report.Expenses != 1150 {
		t.Errorf("MonthlyReport() expenses = %v, want 1150", report.Expenses)
	}
	if report.Balance != 1850 {
		t.Errorf("MonthlyReport() balance = %v, want 1850", report.Balance)
	}
	if report.TransactionCount != 3 {
		t.Errorf("MonthlyReport() count = %d, want 3", report.TransactionCount)
	}
	if report.CategoryBreakdown["food"] != 250 {
		t.Errorf("MonthlyReport() food breakdown = %v, want 250", report.CategoryBreakdown["food"])
	}
	if _, ok := report.CategoryBreakdown["salary"]; ok {
		t.Error("MonthlyReport() breakdown includes income category")
	}

	wantRate := (3000.0 - 1150.0) / 3000.0 * 100
	if report.SavingsRate != wantRate {
		t.Errorf("MonthlyReport() savings rate = %v, want %v", report.SavingsRate, wantRate)
	}
}

func TestMonthlyReport_EmptyMonth(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Now())
	seedMarchTransactions(t, repo)

	report := repo.MonthlyReport(ctx, 2023, 7)
	if report.TransactionCount != 0 || report.Income != 0 || report.Expenses != 0 {
		t.Errorf("MonthlyReport() for empty month = %+v, want zeroes", report)
	}
	if report.SavingsRate != 0 {
		t.Errorf("MonthlyReport() savings rate without income = %v, want 0", report.SavingsRate)
	}
}

func TestTransactionsByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Now())
	seedMarchTransactions(t, repo)

	got := repo.TransactionsByDateRange(ctx, core.NewDate(2024, 3, 1), core.NewDate(2024, 3, 31))
	if len(got) != 3 {
		t.Errorf("TransactionsByDateRange() = %d records, want 3 (bounds inclusive)", len(got))
	}
}

func TestTransactionsByCategory(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Now())
	seedMarchTransactions(t, repo)

	got := repo.TransactionsByCategory(ctx, "food")
	if len(got) != 2 {
		t.Errorf("TransactionsByCategory() = %d records, want 2", len(got))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	seedMarchTransactions(t, repo)
	if _, err := repo.AddBudget(ctx, core.Budget{Category: "food", Amount: 300}); err != nil {
		t.Fatalf("AddBudget() error = %v", err)
	}

	doc := repo.ExportAll(ctx)
	if doc.Version != ExportVersion {
		t.Errorf("ExportAll() version = %q, want %q", doc.Version, ExportVersion)
	}
	if doc.Transactions == nil || doc.SavingsGoals == nil {
		t.Error("ExportAll() returned nil collections, want empty slices")
	}

	fresh := newTestRepo(time.Now())
	if err := fresh.Import(ctx, doc); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if got := fresh.Transactions(ctx); len(got) != len(doc.Transactions) {
		t.Errorf("Import() restored %d transactions, want %d", len(got), len(doc.Transactions))
	}
	if got := fresh.Budgets(ctx); len(got) != 1 {
		t.Errorf("Import() restored %d budgets, want 1", len(got))
	}
}

func TestExportImport_AllCollectionsByValue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := newTestRepo(now)

	seedMarchTransactions(t, repo)
	if _, err := repo.AddBudget(ctx, core.Budget{Category: "food", Amount: 300, Currency: "USD"}); err != nil {
		t.Fatalf("AddBudget() error = %v", err)
	}
	if _, err := repo.AddSavingsGoal(ctx, core.SavingsGoal{Name: "Vacation", TargetAmount: 2000, TargetDate: core.NewDate(2024, 12, 31), Currency: "USD"}); err != nil {
		t.Fatalf("AddSavingsGoal() error = %v", err)
	}
	if _, err := repo.AddRecurringTransaction(ctx, core.RecurringTransaction{Description: "Rent", Amount: 900, Type: core.Expense, Category: "bills", Frequency: core.Monthly}); err != nil {
		t.Fatalf("AddRecurringTransaction() error = %v", err)
	}
	if _, err := repo.AddCategory(ctx, core.Category{Name: "Pet Care", Icon: "🐾"}); err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	prefs := core.DefaultPreferences()
	prefs.Currency = "EUR"
	if err := repo.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}

	doc := repo.ExportAll(ctx)

	fresh := newTestRepo(now)
	if err := fresh.Import(ctx, doc); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if got := fresh.Transactions(ctx); !reflect.DeepEqual(got, doc.Transactions) {
		t.Errorf("transactions after import = %+v, want %+v", got, doc.Transactions)
	}
	if got := fresh.Budgets(ctx); !reflect.DeepEqual(got, doc.Budgets) {
		t.Errorf("budgets after import = %+v, want %+v", got, doc.Budgets)
	}
	if got := fresh.SavingsGoals(ctx); !reflect.DeepEqual(got, doc.SavingsGoals) {
		t.Errorf("savings goals after import = %+v, want %+v", got, doc.SavingsGoals)
	}
	if got := fresh.Categories(ctx); !reflect.DeepEqual(got, doc.Categories) {
		t.Errorf("categories after import = %+v, want %+v", got, doc.Categories)
	}
	if got := fresh.RecurringTransactions(ctx); !reflect.DeepEqual(got, doc.RecurringTransactions) {
		t.Errorf("recurring transactions after import = %+v, want %+v", got, doc.RecurringTransactions)
	}
	if got := fresh.Preferences(ctx); !reflect.DeepEqual(got, *doc.Preferences) {
		t.Errorf("preferences after import = %+v, want %+v", got, *doc.Preferences)
	}
}

func TestImport_SkipsAbsentCollections(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Now())
	seedMarchTransactions(t, repo)

	before := repo.Transactions(ctx)
	if err := repo.Import(ctx, ExportDocument{Budgets: []core.Budget{}}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if got := repo.Transactions(ctx); len(got) != len(before) {
		t.Errorf("Import() with nil transactions touched the collection: %d != %d", len(got), len(before))
	}
	if got := repo.Budgets(ctx); len(got) != 0 {
		t.Errorf("Import() budgets = %d, want replaced with empty", len(got))
	}
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Now())
	seedMarchTransactions(t, repo)

	repo.ClearAll(ctx)

	if got := repo.Transactions(ctx); len(got) != 0 {
		t.Errorf("Transactions() after ClearAll = %d, want 0", len(got))
	}
	if prefs := repo.Preferences(ctx); prefs.Currency != "USD" {
		t.Errorf("Preferences() after ClearAll = %+v, want defaults", prefs)
	}
}
