package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/services"
)

const (
	defaultTopN    = 5
	defaultRecentN = 5
	maxListN       = 50
)

// AnalyticsHandler serves spending rollups.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// queryCount reads a positive count parameter bounded by maxListN.
func queryCount(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxListN {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, name+" must be between 1 and "+strconv.Itoa(maxListN))
	}
	return n, nil
}

// GetDashboard returns the spending overview.
// @Summary     Dashboard
// @Description Summary statistics, rollups and recent expenses across all of the user's spending
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       top    query int false "Number of top categories (default 5)"
// @Param       recent query int false "Number of recent expenses (default 5)"
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	topN, err := queryCount(c, "top", defaultTopN)
	if err != nil {
		respondWithError(c, err)
		return
	}
	recentN, err := queryCount(c, "recent", defaultRecentN)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.analyticsService.GetDashboard(userID, topN, recentN)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetCategoryTotals returns spending per category.
// @Summary     Category totals
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Param       category  query []string false "Category filter" collectionFormat(multi)
// @Success     200 {array}  analytics.CategoryTotal "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.GetCategoryTotals(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": totals})
}

// GetMonthlyTotals returns spending per calendar month.
// @Summary     Monthly totals
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Success     200 {array}  analytics.MonthlyTotal "Monthly totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/monthly [get]
func (h *AnalyticsHandler) GetMonthlyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.GetMonthlyTotals(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": totals})
}

// GetDailyTotals returns spending per day.
// @Summary     Daily totals
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Success     200 {array}  analytics.DailyTotal "Daily totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/daily [get]
func (h *AnalyticsHandler) GetDailyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.GetDailyTotals(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": totals})
}

// GetTopCategories returns the n highest-spend categories.
// @Summary     Top categories
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       n         query int    false "How many categories (default 5)"
// @Param       from_date query string false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string false "End date (YYYY-MM-DD)"
// @Success     200 {array}  analytics.CategoryTotal "Top categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/top-categories [get]
func (h *AnalyticsHandler) GetTopCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	n, err := queryCount(c, "n", defaultTopN)
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.GetTopCategories(userID, n, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": totals})
}
