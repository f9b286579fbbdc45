package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"dailybudget/internal/analytics"
	"dailybudget/internal/models"
)

// DefaultCurrencySymbol prefixes amounts when ReportInput.Currency is empty.
const DefaultCurrencySymbol = "₹"

// ReportInput is everything the summary report renders.
type ReportInput struct {
	Username    string
	Expenses    []models.Expense
	From        *time.Time
	To          *time.Time
	GeneratedAt time.Time
	Currency    string
}

// WriteReport renders the plain-text summary report.
func WriteReport(w io.Writer, in ReportInput) error {
	cur := in.Currency
	if cur == "" {
		cur = DefaultCurrencySymbol
	}
	money := func(d decimal.Decimal) string {
		return cur + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
	}

	summary := analytics.Summarize(in.Expenses)

	var b strings.Builder
	b.WriteString("EXPENSE SUMMARY REPORT\n")
	b.WriteString("======================\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", in.GeneratedAt.Format("January 02, 2006 at 03:04 PM"))
	fmt.Fprintf(&b, "User: %s\n", in.Username)
	fmt.Fprintf(&b, "Period: %s to %s\n\n", periodBound(in.From), periodBound(in.To))

	b.WriteString("OVERVIEW\n")
	b.WriteString("--------\n")
	fmt.Fprintf(&b, "Total Expenses: %d\n", summary.Count)
	fmt.Fprintf(&b, "Total Amount: %s\n", money(summary.Total))
	fmt.Fprintf(&b, "Average Amount: %s\n", money(summary.Average))
	fmt.Fprintf(&b, "Median Amount: %s\n\n", money(summary.Median))

	b.WriteString("SPENDING BY CATEGORY\n")
	b.WriteString("-------------------\n")
	for _, t := range analytics.CategoryTotals(in.Expenses) {
		pct := analytics.PercentageUsed(t.Amount, summary.Total)
		fmt.Fprintf(&b, "%s: %s (%s%%)\n", t.Category, money(t.Amount), pct.StringFixed(1))
	}

	b.WriteString("\n\nMONTHLY BREAKDOWN\n")
	b.WriteString("----------------\n")
	for _, m := range analytics.MonthlyTotals(in.Expenses) {
		fmt.Fprintf(&b, "%s: %s\n", m.Month, money(m.Amount))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func periodBound(t *time.Time) string {
	if t == nil {
		return "All"
	}
	return t.Format(models.DateLayout)
}
