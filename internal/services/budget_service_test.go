package services

import (
	"testing"

	"dailybudget/internal/analytics"
	"dailybudget/internal/models"
	"dailybudget/internal/testutil"
)

func TestSetBudget(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.SetBudget(user.ID, models.CategoryFoodDining, amt("500"), 3, 2024)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected budget ID")
		}
		if !budget.Amount.Equal(amt("500")) || budget.Month != 3 || budget.Year != 2024 {
			t.Errorf("unexpected budget %+v", budget)
		}
	})

	t.Run("upserts_on_natural_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		first, err := svc.SetBudget(user.ID, models.CategoryFoodDining, amt("500"), 3, 2024)
		testutil.AssertNoError(t, err)
		second, err := svc.SetBudget(user.ID, models.CategoryFoodDining, amt("650"), 3, 2024)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected the same row to be replaced, got %s and %s", first.ID, second.ID)
		}
		if !second.Amount.Equal(amt("650")) {
			t.Errorf("expected amount 650, got %s", second.Amount)
		}

		var count int64
		db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 budget row, got %d", count)
		}
	})

	t.Run("distinct_periods_and_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		_, err := svc.SetBudget(user.ID, models.CategoryTravel, amt("100"), 3, 2024)
		testutil.AssertNoError(t, err)
		_, err = svc.SetBudget(user.ID, models.CategoryTravel, amt("100"), 4, 2024)
		testutil.AssertNoError(t, err)
		_, err = svc.SetBudget(other.ID, models.CategoryTravel, amt("100"), 3, 2024)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Budget{}).Count(&count)
		if count != 3 {
			t.Errorf("expected 3 budget rows, got %d", count)
		}
	})

	tests := []struct {
		name     string
		category models.Category
		amount   string
		month    int
		year     int
		code     string
	}{
		{"unknown_category", "Pets", "100", 3, 2024, "INVALID_CATEGORY"},
		{"zero_amount", models.CategoryTravel, "0", 3, 2024, "INVALID_AMOUNT"},
		{"exceeds_column_precision", models.CategoryTravel, "10000000000", 3, 2024, "INVALID_AMOUNT"},
		{"month_zero", models.CategoryTravel, "100", 0, 2024, "INVALID_PERIOD"},
		{"month_thirteen", models.CategoryTravel, "100", 13, 2024, "INVALID_PERIOD"},
		{"year_zero", models.CategoryTravel, "100", 1, 0, "INVALID_PERIOD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewBudgetService(db, NewExpenseService(db))
			user := testutil.CreateTestUser(t, db)

			_, err := svc.SetBudget(user.ID, tt.category, amt(tt.amount), tt.month, tt.year)
			testutil.AssertAppError(t, err, tt.code)
		})
	}
}

func TestGetBudgets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db, NewExpenseService(db))
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestBudget(t, db, user.ID, models.CategoryTravel, "100", 5, 2024)
	testutil.CreateTestBudget(t, db, user.ID, models.CategoryEducation, "200", 5, 2024)
	testutil.CreateTestBudget(t, db, user.ID, models.CategoryEducation, "200", 6, 2024)
	testutil.CreateTestBudget(t, db, other.ID, models.CategoryEducation, "200", 5, 2024)

	budgets, err := svc.GetBudgets(user.ID, 5, 2024)
	testutil.AssertNoError(t, err)

	if len(budgets) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(budgets))
	}
	if budgets[0].Category != models.CategoryEducation {
		t.Errorf("expected budgets ordered by category, got %s first", budgets[0].Category)
	}

	_, err = svc.GetBudgets(user.ID, 14, 2024)
	testutil.AssertAppError(t, err, "INVALID_PERIOD")
}

func TestGetBudgetAnalysis(t *testing.T) {
	t.Run("reconciles_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, models.CategoryShopping, "1000", 2, 2024)
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryShopping, "500", "2024-02-01")
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryShopping, "301", "2024-02-29")
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryShopping, "999", "2024-03-01")
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryTravel, "50", "2024-02-10")

		result, err := svc.GetBudgetAnalysis(user.ID, 2, 2024)
		testutil.AssertNoError(t, err)

		if !result.HasBudgets || len(result.Categories) != 1 {
			t.Fatalf("expected one analysed budget, got %+v", result)
		}
		entry := result.Categories[0]
		testutil.AssertAmount(t, entry.Actual, "801")
		testutil.AssertAmount(t, entry.PercentageUsed, "80.1")
		if entry.Status != analytics.StatusNearLimit {
			t.Errorf("expected near limit, got %s", entry.Status)
		}
	})

	t.Run("no_budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryShopping, "500", "2024-02-01")

		result, err := svc.GetBudgetAnalysis(user.ID, 2, 2024)
		testutil.AssertNoError(t, err)
		if result.HasBudgets {
			t.Error("expected HasBudgets to be false")
		}
	})

	t.Run("budgets_without_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, models.CategoryUtilities, "120", 7, 2024)

		result, err := svc.GetBudgetAnalysis(user.ID, 7, 2024)
		testutil.AssertNoError(t, err)
		if !result.HasBudgets || len(result.Categories) != 1 {
			t.Fatalf("expected a full analysis, got %+v", result)
		}
		if !result.Categories[0].Actual.IsZero() || !result.Categories[0].WellUnderBudget {
			t.Errorf("expected zero actual and well under budget, got %+v", result.Categories[0])
		}
		if result.Insights.SavingsOpportunity == nil || !result.Insights.SavingsOpportunity.Equal(amt("120")) {
			t.Errorf("expected savings opportunity of 120, got %v", result.Insights.SavingsOpportunity)
		}
	})
}
