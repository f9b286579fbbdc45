package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as JSON numbers rather than quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the ISO-8601 calendar date layout used for expense dates.
const DateLayout = "2006-01-02"

// Expense represents a single spend recorded by a user.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_expenses_user_date,priority:1" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category    Category        `gorm:"not null;size:50" json:"category"`
	Description string          `gorm:"size:200" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_expenses_user_date,priority:2" json:"date"`
}

// MonthKey returns the calendar month of the expense as "YYYY-MM".
func (e Expense) MonthKey() string {
	return e.Date.Format("2006-01")
}

// DateKey returns the expense date as "YYYY-MM-DD".
func (e Expense) DateKey() string {
	return e.Date.Format(DateLayout)
}

// NormalizeDate strips the time-of-day component, keeping the calendar day
// as seen in t's location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
