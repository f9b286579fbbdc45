// Package analytics aggregates expense and budget records. Every function is
// pure: inputs are never mutated and no state is kept between calls, so the
// package is safe for concurrent use.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"dailybudget/internal/models"
)

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyTotal is the summed spend for one calendar month ("YYYY-MM").
type MonthlyTotal struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyTotal is the summed spend for one calendar day ("YYYY-MM-DD").
type DailyTotal struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// groupSum sums amounts by key and returns the keys in ascending order.
func groupSum(expenses []models.Expense, key func(models.Expense) string) ([]string, map[string]decimal.Decimal) {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		k := key(e)
		sums[k] = sums[k].Add(e.Amount)
	}
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, sums
}

// CategoryTotals groups expenses by category, ordered by category label.
// Categories with no expenses are not included.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	keys, sums := groupSum(expenses, func(e models.Expense) string { return string(e.Category) })
	out := make([]CategoryTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, CategoryTotal{Category: models.Category(k), Amount: sums[k]})
	}
	return out
}

// MonthlyTotals groups expenses by calendar month, oldest first.
func MonthlyTotals(expenses []models.Expense) []MonthlyTotal {
	keys, sums := groupSum(expenses, models.Expense.MonthKey)
	out := make([]MonthlyTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthlyTotal{Month: k, Amount: sums[k]})
	}
	return out
}

// DailyTotals groups expenses by exact date, oldest first.
func DailyTotals(expenses []models.Expense) []DailyTotal {
	keys, sums := groupSum(expenses, models.Expense.DateKey)
	out := make([]DailyTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, DailyTotal{Date: k, Amount: sums[k]})
	}
	return out
}

// TopCategories returns at most n categories with the greatest totals,
// largest first. The relative order of equal totals is unspecified.
func TopCategories(expenses []models.Expense, n int) []CategoryTotal {
	if n <= 0 {
		return []CategoryTotal{}
	}
	totals := CategoryTotals(expenses)
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// Total sums the amounts of all expenses.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
