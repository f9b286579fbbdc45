package analytics

import (
	"github.com/shopspring/decimal"

	"dailybudget/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Status classifies how much of a budget has been used.
type Status string

const (
	StatusOnTrack    Status = "on_track"
	StatusNearLimit  Status = "near_limit"
	StatusOverBudget Status = "over_budget"
)

// statusBands is checked top-down; the first band whose floor the
// percentage exceeds wins. Anything at or below 80 is on track.
var statusBands = []struct {
	above  decimal.Decimal
	status Status
}{
	{decimal.NewFromInt(100), StatusOverBudget},
	{decimal.NewFromInt(80), StatusNearLimit},
}

// wellUnderLimit is the inclusive ceiling for the well-under-budget insight.
var wellUnderLimit = decimal.NewFromInt(50)

// ClassifyStatus maps a percentage of budget used to a Status.
func ClassifyStatus(pct decimal.Decimal) Status {
	for _, band := range statusBands {
		if pct.GreaterThan(band.above) {
			return band.status
		}
	}
	return StatusOnTrack
}

// IsWellUnderBudget reports whether pct is at or below 50%. It is independent
// of ClassifyStatus and overlaps StatusOnTrack.
func IsWellUnderBudget(pct decimal.Decimal) bool {
	return pct.LessThanOrEqual(wellUnderLimit)
}

// PercentageUsed returns actual/planned*100 rounded half-to-even to one
// decimal place. A non-positive plan yields 0.
func PercentageUsed(actual, planned decimal.Decimal) decimal.Decimal {
	if !planned.IsPositive() {
		return decimal.Zero
	}
	return actual.Div(planned).Mul(hundred).RoundBank(1)
}

// CategoryAnalysis compares one budget line with actual spend.
type CategoryAnalysis struct {
	Category        models.Category `json:"category"`
	Planned         decimal.Decimal `json:"planned"`
	Actual          decimal.Decimal `json:"actual"`
	Remaining       decimal.Decimal `json:"remaining"`
	PercentageUsed  decimal.Decimal `json:"percentage_used"`
	Status          Status          `json:"status"`
	WellUnderBudget bool            `json:"well_under_budget"`
}

// Insights groups analysis entries for the recommendations view.
type Insights struct {
	OverBudget      []CategoryAnalysis `json:"over_budget"`
	NearLimit       []CategoryAnalysis `json:"near_limit"`
	WellUnderBudget []CategoryAnalysis `json:"well_under_budget"`
	// SavingsOpportunity is the total remaining when positive, otherwise nil.
	SavingsOpportunity *decimal.Decimal `json:"savings_opportunity,omitempty"`
}

// BudgetAnalysis is the budget-vs-actual reconciliation for one month.
// HasBudgets is false when no budgets exist for the period; every other
// field is then zero and Categories is empty.
type BudgetAnalysis struct {
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	HasBudgets        bool               `json:"has_budgets"`
	Categories        []CategoryAnalysis `json:"categories"`
	TotalBudget       decimal.Decimal    `json:"total_budget"`
	TotalActual       decimal.Decimal    `json:"total_actual"`
	TotalRemaining    decimal.Decimal    `json:"total_remaining"`
	OverallPercentage decimal.Decimal    `json:"overall_percentage"`
	Insights          Insights           `json:"insights"`
}

// Reconcile joins the budgets for (month, year) with the category totals of
// the expenses dated in that month. Budgets drive the join: categories with
// spend but no budget are left out, and budgets without spend report 0.
func Reconcile(budgets []models.Budget, expenses []models.Expense, month, year int) BudgetAnalysis {
	result := BudgetAnalysis{
		Month:      month,
		Year:       year,
		Categories: []CategoryAnalysis{},
		Insights: Insights{
			OverBudget:      []CategoryAnalysis{},
			NearLimit:       []CategoryAnalysis{},
			WellUnderBudget: []CategoryAnalysis{},
		},
	}

	var periodBudgets []models.Budget
	for _, b := range budgets {
		if b.Month == month && b.Year == year {
			periodBudgets = append(periodBudgets, b)
		}
	}
	if len(periodBudgets) == 0 {
		return result
	}
	result.HasBudgets = true

	actuals := make(map[models.Category]decimal.Decimal)
	for _, t := range CategoryTotals(FilterByMonth(expenses, month, year)) {
		actuals[t.Category] = t.Amount
	}

	for _, b := range periodBudgets {
		actual := actuals[b.Category]
		pct := PercentageUsed(actual, b.Amount)
		entry := CategoryAnalysis{
			Category:        b.Category,
			Planned:         b.Amount,
			Actual:          actual,
			Remaining:       b.Amount.Sub(actual),
			PercentageUsed:  pct,
			Status:          ClassifyStatus(pct),
			WellUnderBudget: IsWellUnderBudget(pct),
		}
		result.Categories = append(result.Categories, entry)
		result.TotalBudget = result.TotalBudget.Add(b.Amount)
		result.TotalActual = result.TotalActual.Add(actual)

		switch entry.Status {
		case StatusOverBudget:
			result.Insights.OverBudget = append(result.Insights.OverBudget, entry)
		case StatusNearLimit:
			result.Insights.NearLimit = append(result.Insights.NearLimit, entry)
		}
		if entry.WellUnderBudget {
			result.Insights.WellUnderBudget = append(result.Insights.WellUnderBudget, entry)
		}
	}

	result.TotalRemaining = result.TotalBudget.Sub(result.TotalActual)
	result.OverallPercentage = PercentageUsed(result.TotalActual, result.TotalBudget)
	if result.TotalRemaining.IsPositive() {
		savings := result.TotalRemaining
		result.Insights.SavingsOpportunity = &savings
	}
	return result
}
