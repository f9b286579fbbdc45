package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"dailybudget/internal/analytics"
	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/middleware"
	"dailybudget/internal/models"
	"dailybudget/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID validates a UUID path parameter. Malformed IDs are reported as
// notFound so that they are indistinguishable from IDs that do not exist.
func parsePathID(c *gin.Context, param string, notFound *apperrors.AppError) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", notFound
	}
	return id, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return models.NormalizeDate(t), nil
}

// parsePeriod reads month and year query parameters, defaulting to the
// current month.
func parsePeriod(c *gin.Context) (month, year int, err error) {
	now := time.Now()
	month, year = int(now.Month()), now.Year()

	if v := c.Query("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "invalid month")
		}
	}
	if v := c.Query("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "invalid year")
		}
	}
	if month < 1 || month > 12 || year < 1 {
		return 0, 0, apperrors.ErrInvalidPeriod
	}
	return month, year, nil
}

// parseExpenseFilter reads the shared expense filter query parameters.
// category may be repeated or comma-separated.
func parseExpenseFilter(c *gin.Context) (analytics.Filter, error) {
	var filter analytics.Filter

	if v := c.Query("from_date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	for _, raw := range c.QueryArray("category") {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			category, ok := models.ParseCategory(name)
			if !ok {
				return filter, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown category: "+name)
			}
			filter.Categories = append(filter.Categories, category)
		}
	}

	if v := c.Query("min_amount"); v != "" {
		amt, err := decimal.NewFromString(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid min_amount")
		}
		filter.MinAmount = &amt
	}

	if v := c.Query("max_amount"); v != "" {
		amt, err := decimal.NewFromString(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid max_amount")
		}
		filter.MaxAmount = &amt
	}

	filter.Search = c.Query("search")
	return filter, nil
}

// respondWithError writes a consistent JSON error response and stops the
// handler chain.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
