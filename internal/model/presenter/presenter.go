package presenter

import (
	"fmt"
	"io"
	"strings"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const dateLayout = "02-01-2006"

const (
	summaryRuleWidth = 50
	listingRuleWidth = 70
	ellipsis         = "..."
)

const (
	NoExpensesMessage         = "No expenses recorded yet!"
	noExpensesInPeriodMessage = "No expenses in the last %s period!"
)

type config interface {
	Currency() string
	DescriptionWidth() int
}

type Presenter struct {
	currency  string
	descWidth int
}

func New(config config) *Presenter {
	return &Presenter{
		currency:  config.Currency(),
		descWidth: config.DescriptionWidth(),
	}
}

func (p *Presenter) RenderReport(w io.Writer, report *reports.Report) error {
	switch report.Status {
	case reports.StatusNoExpenses:
		return write(w, "\n"+NoExpensesMessage+"\n")
	case reports.StatusNoExpensesInPeriod:
		return write(w, "\n"+fmt.Sprintf(noExpensesInPeriodMessage, strings.ToLower(report.Window.String()))+"\n")
	}
	return p.renderSummary(w, report.Summary)
}

func (p *Presenter) renderSummary(w io.Writer, s reports.Summary) error {
	rule := strings.Repeat("=", summaryRuleWidth)
	thin := strings.Repeat("-", summaryRuleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "%s Expense Summary\n", s.Window)
	fmt.Fprintf(&b, "Period: %s to %s\n", s.Start.Format(dateLayout), s.End.Format(dateLayout))
	fmt.Fprintf(&b, "%s\n", rule)

	fmt.Fprintf(&b, "\n%-20s %15s %12s\n", "Category", "Amount", "Percentage")
	fmt.Fprintf(&b, "%s\n", thin)
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "%-20s %s%14s %11s%%\n",
			c.Category, p.currency, c.Total.StringFixed(2), c.Percent.StringFixed(1))
	}
	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "%-20s %s%14s %11s%%\n", "TOTAL", p.currency, s.GrandTotal.StringFixed(2), "100.0")
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "Total Expenses: %d\n", s.Count)
	fmt.Fprintf(&b, "Average per expense: %s%s\n", p.currency, s.Average.StringFixed(2))
	fmt.Fprintf(&b, "Highest category: %s (%s%s)\n", s.Highest.Category, p.currency, s.Highest.Total.StringFixed(2))

	return write(w, b.String())
}

func (p *Presenter) RenderListing(w io.Writer, records []expense.Record) error {
	if len(records) == 0 {
		return write(w, "\n"+NoExpensesMessage+"\n")
	}

	rule := strings.Repeat("=", listingRuleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "All Expenses\n")
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "%-12s %-15s %10s %-*s\n", "Date", "Category", "Amount", p.descWidth, "Description")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", listingRuleWidth))
	for _, rec := range records {
		fmt.Fprintf(&b, "%-12s %-15s %s%9s %-*s\n",
			rec.Date.Format(dateLayout),
			rec.Category,
			p.currency, rec.Amount.StringFixed(2),
			p.descWidth, truncate(rec.Description, p.descWidth))
	}
	fmt.Fprintf(&b, "%s\n\n", rule)

	return write(w, b.String())
}

func (p *Presenter) RenderAdded(w io.Writer, rec expense.Record) error {
	return write(w, fmt.Sprintf("\n✓ Expense added successfully! %s%s for %s\n",
		p.currency, rec.Amount.StringFixed(2), rec.Category))
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-len(ellipsis)]) + ellipsis
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
