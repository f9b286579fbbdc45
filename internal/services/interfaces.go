package services

import (
	"time"

	"github.com/shopspring/decimal"

	"dailybudget/internal/analytics"
	"dailybudget/internal/export"
	"dailybudget/internal/models"
	"dailybudget/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// ExpenseInput carries every user-editable field of an expense. A zero Date
// means today.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Category    models.Category
	Description string
	Date        time.Time
}

// ExpenseList is one page of filtered expenses plus totals over every
// matching expense, not just the page.
type ExpenseList struct {
	pagination.PageResponse[models.Expense]
	FilteredTotal decimal.Decimal `json:"filtered_total"`
}

// ExpenseServicer defines the contract for expense storage. Update and delete
// report false, not an error, when no expense with that ID belongs to the user.
type ExpenseServicer interface {
	AddExpense(userID string, input ExpenseInput) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, input ExpenseInput) (bool, error)
	DeleteExpense(userID, expenseID string) (bool, error)
	GetExpenses(userID string) ([]models.Expense, error)
	GetExpensesBetween(userID string, from, to time.Time) ([]models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	ListExpenses(userID string, page pagination.PageRequest, filter analytics.Filter, order analytics.SortOrder) (*ExpenseList, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudget(userID string, category models.Category, amount decimal.Decimal, month, year int) (*models.Budget, error)
	GetBudgets(userID string, month, year int) ([]models.Budget, error)
	GetBudgetAnalysis(userID string, month, year int) (*analytics.BudgetAnalysis, error)
}

// Dashboard is the overview of all of a user's spending.
type Dashboard struct {
	Summary       analytics.Summary         `json:"summary"`
	TopCategory   *analytics.CategoryTotal  `json:"top_category,omitempty"`
	Categories    []analytics.CategoryTotal `json:"categories"`
	Monthly       []analytics.MonthlyTotal  `json:"monthly"`
	Daily         []analytics.DailyTotal    `json:"daily"`
	TopCategories []analytics.CategoryTotal `json:"top_categories"`
	Recent        []models.Expense          `json:"recent"`
}

// AnalyticsServicer defines the contract for spending rollups.
type AnalyticsServicer interface {
	GetDashboard(userID string, topN, recentN int) (*Dashboard, error)
	GetCategoryTotals(userID string, filter analytics.Filter) ([]analytics.CategoryTotal, error)
	GetMonthlyTotals(userID string, filter analytics.Filter) ([]analytics.MonthlyTotal, error)
	GetDailyTotals(userID string, filter analytics.Filter) ([]analytics.DailyTotal, error)
	GetTopCategories(userID string, n int, filter analytics.Filter) ([]analytics.CategoryTotal, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	Count       int
	Total       decimal.Decimal
}

// ExportServicer defines the contract for expense exports.
type ExportServicer interface {
	Export(userID string, filter analytics.Filter, format export.Format) (*ExportFile, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID string, action AuditAction, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
