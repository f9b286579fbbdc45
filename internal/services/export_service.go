package services

import (
	"bytes"
	"errors"
	"time"

	"gorm.io/gorm"

	"dailybudget/internal/analytics"
	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/export"
	"dailybudget/internal/models"
)

// exportService renders a user's filtered expenses as downloadable files.
type exportService struct {
	db       *gorm.DB
	expenses ExpenseServicer
	currency string
	now      func() time.Time
}

// NewExportService creates a new ExportServicer. currency prefixes amounts
// in the summary report.
func NewExportService(db *gorm.DB, expenses ExpenseServicer, currency string) ExportServicer {
	return &exportService{db: db, expenses: expenses, currency: currency, now: time.Now}
}

// Export renders the user's expenses matching filter in the requested format.
func (s *exportService) Export(userID string, filter analytics.Filter, format export.Format) (*ExportFile, error) {
	var user models.User
	if err := s.db.Select("id", "username").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	all, err := s.expenses.GetExpenses(userID)
	if err != nil {
		return nil, err
	}
	expenses := filter.Apply(all)
	if len(expenses) == 0 {
		return nil, apperrors.ErrNothingToExport
	}

	var buf bytes.Buffer
	switch format {
	case export.FormatCSV, export.FormatXLSX:
		err = export.WriteCSV(&buf, expenses)
	case export.FormatJSON:
		err = export.WriteJSON(&buf, expenses)
	case export.FormatCategories:
		err = export.WriteCategoryCSV(&buf, analytics.CategoryTotals(expenses))
	case export.FormatSummary:
		err = export.WriteReport(&buf, export.ReportInput{
			Username:    user.Username,
			Expenses:    expenses,
			From:        filter.FromDate,
			To:          filter.ToDate,
			GeneratedAt: s.now(),
			Currency:    s.currency,
		})
	default:
		return nil, apperrors.ErrInvalidExportFormat
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ExportFile{
		Filename:    export.Filename(format, user.Username, s.now()),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
		Count:       len(expenses),
		Total:       analytics.Total(expenses),
	}, nil
}
