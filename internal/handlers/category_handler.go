package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dailybudget/internal/models"
)

// CategoryHandler serves the fixed category list.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories lists every expense category in display order.
// @Summary     List categories
// @Description Get the fixed set of expense categories with descriptions
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.CategoryInfo "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.CategoryCatalog()})
}
