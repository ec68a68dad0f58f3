package core

import "strings"

// DefaultPreferences are used whenever no preferences document exists yet.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		DarkMode:        false,
		Currency:        "USD",
		Language:        "en",
		Notifications:   true,
		DefaultCategory: "other",
	}
}

// DefaultCategories is the fixed seed served while no categories collection
// has been persisted.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "Food & Dining", Icon: "🍽️", Type: CategoryExpense},
		{ID: "transport", Name: "Transportation", Icon: "🚗", Type: CategoryExpense},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️", Type: CategoryExpense},
		{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Type: CategoryExpense},
		{ID: "bills", Name: "Bills & Utilities", Icon: "📄", Type: CategoryExpense},
		{ID: "health", Name: "Healthcare", Icon: "🏥", Type: CategoryExpense},
		{ID: "education", Name: "Education", Icon: "📚", Type: CategoryExpense},
		{ID: "salary", Name: "Salary", Icon: "💼", Type: CategoryIncome},
		{ID: "freelance", Name: "Freelance", Icon: "💻", Type: CategoryIncome},
		{ID: "investment", Name: "Investment", Icon: "📊", Type: CategoryIncome},
		{ID: "other", Name: "Other", Icon: "📦", Type: CategoryBoth},
	}
}

// Slugify derives a category id from its display name.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}
