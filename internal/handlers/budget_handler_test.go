package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"dailybudget/internal/analytics"
	"dailybudget/internal/models"
	"dailybudget/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	setBudgetFn         func(userID string, category models.Category, amount decimal.Decimal, month, year int) (*models.Budget, error)
	getBudgetsFn        func(userID string, month, year int) ([]models.Budget, error)
	getBudgetAnalysisFn func(userID string, month, year int) (*analytics.BudgetAnalysis, error)
}

func (m *mockBudgetService) SetBudget(userID string, category models.Category, amount decimal.Decimal, month, year int) (*models.Budget, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(userID, category, amount, month, year)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgets(userID string, month, year int) ([]models.Budget, error) {
	if m.getBudgetsFn != nil {
		return m.getBudgetsFn(userID, month, year)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetAnalysis(userID string, month, year int) (*analytics.BudgetAnalysis, error) {
	if m.getBudgetAnalysisFn != nil {
		return m.getBudgetAnalysisFn(userID, month, year)
	}
	return &analytics.BudgetAnalysis{Month: month, Year: year}, nil
}

func setupBudgetRouter(svc services.BudgetServicer) *gin.Engine {
	handler := NewBudgetHandler(svc, &mockAuditService{})
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.PUT("/budgets", handler.SetBudget)
	auth.GET("/budgets", handler.GetBudgets)
	auth.GET("/budgets/analysis", handler.GetBudgetAnalysis)
	return r
}

// --- tests ---

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("returns 200 and forwards the period", func(t *testing.T) {
		var gotCategory models.Category
		var gotMonth, gotYear int
		svc := &mockBudgetService{
			setBudgetFn: func(userID string, category models.Category, amount decimal.Decimal, month, year int) (*models.Budget, error) {
				gotCategory, gotMonth, gotYear = category, month, year
				return &models.Budget{UserID: userID, Category: category, Amount: amount, Month: month, Year: year}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "PUT", "/budgets", `{"category":"Housing","amount":1200,"month":3,"year":2024}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCategory != models.CategoryHousing || gotMonth != 3 || gotYear != 2024 {
			t.Errorf("unexpected arguments: %s %d/%d", gotCategory, gotMonth, gotYear)
		}
	})

	t.Run("returns 400 on month out of range", func(t *testing.T) {
		r := setupBudgetRouter(&mockBudgetService{})

		rec := doRequest(r, "PUT", "/budgets", `{"category":"Housing","amount":1200,"month":13,"year":2024}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		r := setupBudgetRouter(&mockBudgetService{})

		rec := doRequest(r, "PUT", "/budgets", `{"category":"Yachts","amount":1200,"month":3,"year":2024}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		var gotMonth, gotYear int
		svc := &mockBudgetService{
			getBudgetsFn: func(_ string, month, year int) ([]models.Budget, error) {
				gotMonth, gotYear = month, year
				return []models.Budget{}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/budgets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		now := time.Now()
		if gotMonth != int(now.Month()) || gotYear != now.Year() {
			t.Errorf("expected current month, got %d/%d", gotMonth, gotYear)
		}
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupBudgetRouter(&mockBudgetService{})

		rec := doRequest(r, "GET", "/budgets?month=0&year=2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})
}

func TestBudgetHandler_GetBudgetAnalysis(t *testing.T) {
	t.Run("returns the analysis for the requested month", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetAnalysisFn: func(_ string, month, year int) (*analytics.BudgetAnalysis, error) {
				return &analytics.BudgetAnalysis{
					Month:      month,
					Year:       year,
					HasBudgets: true,
					Categories: []analytics.CategoryAnalysis{{
						Category:       models.CategoryHousing,
						Planned:        decimal.NewFromInt(100),
						Actual:         decimal.NewFromInt(90),
						Remaining:      decimal.NewFromInt(10),
						PercentageUsed: decimal.NewFromInt(90),
						Status:         analytics.StatusNearLimit,
					}},
				}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/budgets/analysis?month=2&year=2024", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["month"] != float64(2) || result["year"] != float64(2024) {
			t.Errorf("unexpected period in %v", result)
		}
		cats := result["categories"].([]interface{})
		if len(cats) != 1 || cats[0].(map[string]interface{})["status"] != "near_limit" {
			t.Errorf("unexpected categories: %v", cats)
		}
	})
}
