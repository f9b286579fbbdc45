package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/export"
	"dailybudget/internal/services"
)

// ExportHandler serves expense downloads.
type ExportHandler struct {
	exportService services.ExportServicer
	auditService  services.AuditServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService services.ExportServicer, auditService services.AuditServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService, auditService: auditService}
}

// Export downloads the user's filtered expenses.
// @Summary     Export expenses
// @Description Download filtered expenses as CSV, JSON, a spreadsheet-compatible CSV, a text summary report or per-category totals
// @Tags        export
// @Produce     octet-stream
// @Security    BearerAuth
// @Param       format    query string   false "csv (default), json, xlsx, summary or categories"
// @Param       from_date query string   false "Start date (YYYY-MM-DD)"
// @Param       to_date   query string   false "End date (YYYY-MM-DD)"
// @Param       category  query []string false "Category filter" collectionFormat(multi)
// @Param       search    query string   false "Description search"
// @Success     200 {file}   file "Export file"
// @Failure     400 {object} ErrorResponse "Invalid format or filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No expenses match the filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	format, ok := export.ParseFormat(c.Query("format"))
	if !ok {
		respondWithError(c, apperrors.ErrInvalidExportFormat)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	file, err := h.exportService.Export(userID, filter, format)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditExport, "expense", "", c.ClientIP(),
		map[string]interface{}{"format": string(format), "count": file.Count})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
