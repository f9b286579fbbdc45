package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"dailybudget/internal/models"
)

var two = decimal.NewFromInt(2)

// Summary holds the headline figures for a set of expenses.
type Summary struct {
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Average    decimal.Decimal `json:"average"`
	Median     decimal.Decimal `json:"median"`
	FirstDate  *time.Time      `json:"first_date,omitempty"`
	LastDate   *time.Time      `json:"last_date,omitempty"`
	Categories int             `json:"categories"`
}

// Median returns the middle value of amounts. For an even count it is the
// mean of the two middle values; for no amounts it is zero.
func Median(amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(two)
}

// Summarize computes count, total, average (rounded to cents), median, date
// range and distinct category count. An empty input yields a zero Summary.
func Summarize(expenses []models.Expense) Summary {
	s := Summary{Total: decimal.Zero, Average: decimal.Zero, Median: decimal.Zero}
	if len(expenses) == 0 {
		return s
	}

	amounts := make([]decimal.Decimal, len(expenses))
	categories := make(map[models.Category]struct{})
	first, last := expenses[0].Date, expenses[0].Date
	for i, e := range expenses {
		amounts[i] = e.Amount
		s.Total = s.Total.Add(e.Amount)
		categories[e.Category] = struct{}{}
		if e.Date.Before(first) {
			first = e.Date
		}
		if e.Date.After(last) {
			last = e.Date
		}
	}

	s.Count = len(expenses)
	s.Average = s.Total.DivRound(decimal.NewFromInt(int64(s.Count)), 2)
	s.Median = Median(amounts)
	s.FirstDate = &first
	s.LastDate = &last
	s.Categories = len(categories)
	return s
}
