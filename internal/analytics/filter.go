package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dailybudget/internal/models"
)

// Filter narrows a set of expenses. Zero-valued fields do not filter.
// Date bounds are inclusive calendar days.
type Filter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Categories []models.Category
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	// Search matches descriptions case-insensitively.
	Search string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.FromDate == nil && f.ToDate == nil && len(f.Categories) == 0 &&
		f.MinAmount == nil && f.MaxAmount == nil && strings.TrimSpace(f.Search) == ""
}

// Matches reports whether e passes every criterion of f.
func (f Filter) Matches(e models.Expense) bool {
	day := models.NormalizeDate(e.Date)
	if f.FromDate != nil && day.Before(models.NormalizeDate(*f.FromDate)) {
		return false
	}
	if f.ToDate != nil && day.After(models.NormalizeDate(*f.ToDate)) {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, e.Category) {
		return false
	}
	if f.MinAmount != nil && e.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && e.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" &&
		!strings.Contains(strings.ToLower(e.Description), strings.ToLower(q)) {
		return false
	}
	return true
}

// Apply returns the expenses that match f, preserving input order.
func (f Filter) Apply(expenses []models.Expense) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func containsCategory(set []models.Category, c models.Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// FilterByMonth returns the expenses dated in the given month and year.
func FilterByMonth(expenses []models.Expense, month, year int) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if int(e.Date.Month()) == month && e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out
}

// SortOrder selects how expense lists are ordered.
type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortAmountDesc SortOrder = "amount_desc"
	SortAmountAsc  SortOrder = "amount_asc"
	SortCategory   SortOrder = "category"
)

// ParseSortOrder maps a query value to a SortOrder. Empty selects SortNewest.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch o := SortOrder(s); o {
	case "":
		return SortNewest, true
	case SortNewest, SortOldest, SortAmountDesc, SortAmountAsc, SortCategory:
		return o, true
	}
	return "", false
}

// SortExpenses returns a sorted copy of expenses.
func SortExpenses(expenses []models.Expense, order SortOrder) []models.Expense {
	out := make([]models.Expense, len(expenses))
	copy(out, expenses)

	var less func(a, b models.Expense) bool
	switch order {
	case SortOldest:
		less = func(a, b models.Expense) bool { return a.Date.Before(b.Date) }
	case SortAmountDesc:
		less = func(a, b models.Expense) bool { return a.Amount.GreaterThan(b.Amount) }
	case SortAmountAsc:
		less = func(a, b models.Expense) bool { return a.Amount.LessThan(b.Amount) }
	case SortCategory:
		less = func(a, b models.Expense) bool { return a.Category < b.Category }
	default:
		less = func(a, b models.Expense) bool { return a.Date.After(b.Date) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
