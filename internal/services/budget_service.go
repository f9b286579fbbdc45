package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dailybudget/internal/analytics"
	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db       *gorm.DB
	expenses ExpenseServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, expenses ExpenseServicer) BudgetServicer {
	return &budgetService{db: db, expenses: expenses}
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return apperrors.ErrInvalidPeriod
	}
	return nil
}

// SetBudget creates the budget for (category, month, year) or replaces the
// amount of the existing one.
func (s *budgetService) SetBudget(userID string, category models.Category, amount decimal.Decimal, month, year int) (*models.Budget, error) {
	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown category: "+string(category))
	}
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, err
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
		Year:     year,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     budget.Amount,
			"updated_at": time.Now(),
		}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// On conflict the generated ID was discarded; read back the stored row.
	var stored models.Budget
	if err := s.db.Where("user_id = ? AND category = ? AND month = ? AND year = ?",
		userID, category, month, year).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// GetBudgets returns the user's budgets for exactly (month, year), ordered by category.
func (s *budgetService) GetBudgets(userID string, month, year int) ([]models.Budget, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetAnalysis reconciles the month's budgets against the month's expenses.
func (s *budgetService) GetBudgetAnalysis(userID string, month, year int) (*analytics.BudgetAnalysis, error) {
	budgets, err := s.GetBudgets(userID, month, year)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	expenses, err := s.expenses.GetExpensesBetween(userID, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	result := analytics.Reconcile(budgets, expenses, month, year)
	return &result, nil
}
