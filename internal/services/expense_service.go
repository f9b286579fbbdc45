package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dailybudget/internal/analytics"
	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/logger"
	"dailybudget/internal/models"
	"dailybudget/internal/pagination"
	"dailybudget/internal/uuid"
)

const maxDescriptionLength = 200

// maxAmount is the exclusive upper bound of the NUMERIC(12,2) amount columns.
var maxAmount = decimal.New(1, 10)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// normalizeAmount rounds a to cents and rejects values the amount columns
// cannot hold.
func normalizeAmount(a decimal.Decimal) (decimal.Decimal, error) {
	a = a.Round(2)
	if !a.IsPositive() {
		return a, apperrors.ErrInvalidAmount
	}
	if a.GreaterThanOrEqual(maxAmount) {
		return a, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must be less than 10,000,000,000")
	}
	return a, nil
}

// expenseService stores and queries expenses. Every query is scoped to the
// owning user.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// validateExpenseInput checks an expense before it is written and returns the
// input with its date normalized.
func validateExpenseInput(input ExpenseInput) (ExpenseInput, error) {
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return input, err
	}
	if !input.Category.Valid() {
		return input, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown category: "+string(input.Category))
	}
	input.Description = strings.TrimSpace(input.Description)
	if len([]rune(input.Description)) > maxDescriptionLength {
		return input, apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 200 characters")
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}
	input.Date = models.NormalizeDate(input.Date)
	input.Amount = amount
	return input, nil
}

// AddExpense records a new expense for userID.
func (s *expenseService) AddExpense(userID string, input ExpenseInput) (*models.Expense, error) {
	input, err := validateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// UpdateExpense replaces every editable field of an expense owned by userID.
func (s *expenseService) UpdateExpense(userID, expenseID string, input ExpenseInput) (bool, error) {
	input, err := validateExpenseInput(input)
	if err != nil {
		return false, err
	}
	if !uuid.IsValid(expenseID) {
		return false, nil
	}

	result := s.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Updates(map[string]interface{}{
			"amount":      input.Amount,
			"category":    input.Category,
			"description": input.Description,
			"date":        input.Date,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteExpense permanently removes an expense owned by userID.
func (s *expenseService) DeleteExpense(userID, expenseID string) (bool, error) {
	if !uuid.IsValid(expenseID) {
		return false, nil
	}
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("delete matched no expense", "user_id", userID, "expense_id", expenseID)
	}
	return result.RowsAffected > 0, nil
}

// GetExpenses returns all of a user's expenses, newest date first.
func (s *expenseService) GetExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpensesBetween returns a user's expenses dated in [from, to), newest first.
func (s *expenseService) GetExpensesBetween(userID string, from, to time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC").Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpenseByID retrieves one expense owned by userID.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if !uuid.IsValid(expenseID) {
		return nil, apperrors.ErrExpenseNotFound
	}
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ListExpenses returns one page of a user's expenses matching filter.
func (s *expenseService) ListExpenses(userID string, page pagination.PageRequest, filter analytics.Filter, order analytics.SortOrder) (*ExpenseList, error) {
	page.Normalize()

	base := applyExpenseFilter(s.db.Model(&models.Expense{}).Where("user_id = ?", userID), filter)

	var totals struct {
		Count int64
		Total decimal.NullDecimal
	}
	if err := base.Session(&gorm.Session{}).
		Select("COUNT(*) AS count, SUM(amount) AS total").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Session(&gorm.Session{}).
		Scopes(pagination.Paginate(page)).
		Order(expenseOrder(order)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	list := &ExpenseList{
		PageResponse:  pagination.NewPageResponse(expenses, page.Page, page.PageSize, totals.Count),
		FilteredTotal: decimal.Zero,
	}
	if totals.Total.Valid {
		list.FilteredTotal = totals.Total.Decimal.Round(2)
	}
	return list, nil
}

func applyExpenseFilter(q *gorm.DB, f analytics.Filter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", models.NormalizeDate(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", models.NormalizeDate(*f.ToDate))
	}
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q = q.Where(`LOWER(description) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(search))+"%")
	}
	return q
}

func expenseOrder(order analytics.SortOrder) string {
	switch order {
	case analytics.SortOldest:
		return "date ASC, created_at ASC"
	case analytics.SortAmountDesc:
		return "amount DESC, date DESC"
	case analytics.SortAmountAsc:
		return "amount ASC, date DESC"
	case analytics.SortCategory:
		return "category ASC, date DESC"
	default:
		return "date DESC, created_at DESC"
	}
}
