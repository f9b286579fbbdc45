// Package export serializes expenses to CSV, JSON and a plain-text summary
// report, and reads the CSV and JSON forms back.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dailybudget/internal/analytics"
	"dailybudget/internal/models"
)

// Format identifies an export kind.
type Format string

const (
	FormatCSV        Format = "csv"
	FormatJSON       Format = "json"
	FormatXLSX       Format = "xlsx"
	FormatSummary    Format = "summary"
	FormatCategories Format = "categories"
)

// ParseFormat validates a requested export format. Empty selects CSV.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatCSV, true
	case FormatCSV, FormatJSON, FormatXLSX, FormatSummary, FormatCategories:
		return f, true
	}
	return "", false
}

// ContentType returns the MIME type served for f. The xlsx export carries
// CSV bytes under the spreadsheet MIME type so that spreadsheet apps open it.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatSummary:
		return "text/plain; charset=utf-8"
	default:
		return "text/csv"
	}
}

// Filename builds the download name, e.g. expenses_asha_20240315.csv.
func Filename(f Format, username string, now time.Time) string {
	base := fmt.Sprintf("expenses_%s_%s", username, now.Format("20060102"))
	switch f {
	case FormatJSON:
		return base + ".json"
	case FormatXLSX:
		return base + ".xlsx"
	case FormatSummary:
		return "summary_" + base + ".txt"
	case FormatCategories:
		return "categories_" + base + ".csv"
	default:
		return base + ".csv"
	}
}

var csvHeader = []string{"id", "amount", "category", "description", "date", "created_at"}

// Record is the serialized form of an expense.
type Record struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"created_at"`
}

// NewRecord converts an expense for export.
func NewRecord(e models.Expense) Record {
	r := Record{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Description: e.Description,
		Date:        e.DateKey(),
	}
	if !e.CreatedAt.IsZero() {
		r.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	return r
}

// Records converts expenses for export, preserving order.
func Records(expenses []models.Expense) []Record {
	out := make([]Record, len(expenses))
	for i, e := range expenses {
		out[i] = NewRecord(e)
	}
	return out
}

// WriteCSV writes one header row and one row per expense.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range Records(expenses) {
		row := []string{r.ID, r.Amount.StringFixed(2), r.Category, r.Description, r.Date, r.CreatedAt}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes an indented array with one object per expense.
func WriteJSON(w io.Writer, expenses []models.Expense) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(expenses))
}

// WriteCategoryCSV writes a category,amount row per category total.
func WriteCategoryCSV(w io.Writer, totals []analytics.CategoryTotal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "amount"}); err != nil {
		return err
	}
	for _, t := range totals {
		if err := cw.Write([]string{string(t.Category), t.Amount.StringFixed(2)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads the output of WriteCSV. Columns are located by header name,
// so column order does not matter; id and created_at are optional.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"amount", "category", "date"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}
	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	records := []Record{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(field(row, "amount"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount: %w", line, err)
		}
		records = append(records, Record{
			ID:          field(row, "id"),
			Amount:      amount,
			Category:    field(row, "category"),
			Description: field(row, "description"),
			Date:        field(row, "date"),
			CreatedAt:   field(row, "created_at"),
		})
	}
	return records, nil
}

// ParseJSON reads the output of WriteJSON.
func ParseJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
