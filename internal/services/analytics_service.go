package services

import (
	"dailybudget/internal/analytics"
	"dailybudget/internal/models"
)

// analyticsService computes rollups over a user's stored expenses.
type analyticsService struct {
	expenses ExpenseServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(expenses ExpenseServicer) AnalyticsServicer {
	return &analyticsService{expenses: expenses}
}

func (s *analyticsService) load(userID string, filter analytics.Filter) ([]models.Expense, error) {
	all, err := s.expenses.GetExpenses(userID)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		return all, nil
	}
	return filter.Apply(all), nil
}

// GetDashboard returns headline figures, rollups, the topN categories and
// the recentN most recent expenses.
func (s *analyticsService) GetDashboard(userID string, topN, recentN int) (*Dashboard, error) {
	expenses, err := s.load(userID, analytics.Filter{})
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Summary:       analytics.Summarize(expenses),
		Categories:    analytics.CategoryTotals(expenses),
		Monthly:       analytics.MonthlyTotals(expenses),
		Daily:         analytics.DailyTotals(expenses),
		TopCategories: analytics.TopCategories(expenses, topN),
	}
	if top := analytics.TopCategories(expenses, 1); len(top) == 1 {
		dashboard.TopCategory = &top[0]
	}

	// Expenses arrive newest first.
	if recentN < 0 {
		recentN = 0
	}
	if recentN > len(expenses) {
		recentN = len(expenses)
	}
	dashboard.Recent = expenses[:recentN]
	return dashboard, nil
}

// GetCategoryTotals returns per-category spend for matching expenses.
func (s *analyticsService) GetCategoryTotals(userID string, filter analytics.Filter) ([]analytics.CategoryTotal, error) {
	expenses, err := s.load(userID, filter)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryTotals(expenses), nil
}

// GetMonthlyTotals returns per-month spend for matching expenses.
func (s *analyticsService) GetMonthlyTotals(userID string, filter analytics.Filter) ([]analytics.MonthlyTotal, error) {
	expenses, err := s.load(userID, filter)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyTotals(expenses), nil
}

// GetDailyTotals returns per-day spend for matching expenses.
func (s *analyticsService) GetDailyTotals(userID string, filter analytics.Filter) ([]analytics.DailyTotal, error) {
	expenses, err := s.load(userID, filter)
	if err != nil {
		return nil, err
	}
	return analytics.DailyTotals(expenses), nil
}

// GetTopCategories returns the n highest-spend categories.
func (s *analyticsService) GetTopCategories(userID string, n int, filter analytics.Filter) ([]analytics.CategoryTotal, error) {
	expenses, err := s.load(userID, filter)
	if err != nil {
		return nil, err
	}
	return analytics.TopCategories(expenses, n), nil
}
