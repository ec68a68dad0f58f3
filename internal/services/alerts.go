package services

import (
	"financetracker/internal/analytics"
	"financetracker/internal/notify"
)

// Budgets within this share of their limit trigger a near-limit warning.
const nearLimitThreshold = 80

// Alerter publishes budget and goal notifications from dashboard stats. It
// remembers which conditions it has already alerted on and stays quiet while
// they persist; once a condition clears, the next occurrence alerts again.
type Alerter struct {
	broadcaster *notify.Broadcaster
	exceeded    map[string]bool
	nearLimit   map[string]bool
	achieved    map[string]bool
	milestones  map[string]float64
}

func NewAlerter(b *notify.Broadcaster) *Alerter {
	return &Alerter{
		broadcaster: b,
		exceeded:    make(map[string]bool),
		nearLimit:   make(map[string]bool),
		achieved:    make(map[string]bool),
		milestones:  make(map[string]float64),
	}
}

// CheckBudgets publishes a warning per newly exceeded budget (with the
// over-budget delta) and per budget newly nearing its limit.
func (a *Alerter) CheckBudgets(stats analytics.DashboardStats) {
	for _, p := range stats.BudgetProgress {
		switch {
		case p.Exceeded():
			if !a.exceeded[p.Category] {
				a.broadcaster.BudgetExceeded(p.Budget, p.Spent)
				a.exceeded[p.Category] = true
			}
			delete(a.nearLimit, p.Category)
		case p.Percentage >= nearLimitThreshold:
			if !a.nearLimit[p.Category] {
				a.broadcaster.BudgetNearLimit(p.Budget, p.Percentage)
				a.nearLimit[p.Category] = true
			}
			delete(a.exceeded, p.Category)
		default:
			delete(a.exceeded, p.Category)
			delete(a.nearLimit, p.Category)
		}
	}
}

// CheckGoals publishes one celebration per newly achieved goal and one
// milestone note per 25/50/75/90 percent band first crossed.
func (a *Alerter) CheckGoals(stats analytics.DashboardStats) {
	for _, p := range stats.GoalsProgress {
		if p.Achieved() {
			if !a.achieved[p.ID] {
				a.broadcaster.GoalAchieved(p.SavingsGoal)
				a.achieved[p.ID] = true
			}
			continue
		}
		delete(a.achieved, p.ID)

		band := notify.MilestoneBand(p.Percentage)
		if band == 0 {
			delete(a.milestones, p.ID)
			continue
		}
		if a.milestones[p.ID] != band {
			a.broadcaster.GoalMilestone(p.SavingsGoal, p.Percentage)
			a.milestones[p.ID] = band
		}
	}
}
