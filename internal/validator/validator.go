// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"dailybudget/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("budget_month", validateBudgetMonth)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateBudgetMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "newest", "oldest", "amount_desc", "amount_asc", "category":
		return true
	}
	return false
}
