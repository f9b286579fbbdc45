package models

import "github.com/shopspring/decimal"

// Budget represents a monthly spending allocation for one category. A user
// has at most one budget per (category, month, year).
type Budget struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_period,priority:1" json:"user_id"`
	Category Category        `gorm:"not null;size:50;uniqueIndex:idx_budgets_period,priority:2" json:"category"`
	Amount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Month    int             `gorm:"not null;uniqueIndex:idx_budgets_period,priority:3" json:"month"`
	Year     int             `gorm:"not null;uniqueIndex:idx_budgets_period,priority:4" json:"year"`
}
