package models

// User represents the user model in the database
type User struct {
	Base
	Username string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Expenses []Expense `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
	Budgets  []Budget  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"budgets,omitempty"`
}
