package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

var hundred = decimal.NewFromInt(100)

type CategoryTotal struct {
	Category expense.Category
	Total    decimal.Decimal
	Percent  decimal.Decimal
}

type Summary struct {
	Window     Window
	Start      time.Time
	End        time.Time
	Categories []CategoryTotal
	GrandTotal decimal.Decimal
	Count      int
	Average    decimal.Decimal
	Highest    CategoryTotal
}

// Summarize aggregates the records dated on or after window.Start(now).
// It reports false when there is nothing to summarize.
func Summarize(records []expense.Record, now time.Time, window Window) (Summary, bool) {
	return summarizeSince(records, window.Start(now), now, window)
}

func summarizeSince(records []expense.Record, start, end time.Time, window Window) (Summary, bool) {
	if len(records) == 0 {
		return Summary{}, false
	}
	included := filterExpensesSince(records, start)
	if len(included) == 0 {
		return Summary{}, false
	}

	res := groupExpenses(included)
	res.Window = window
	res.Start = start
	res.End = end
	return res, true
}

// filterExpensesSince keeps records dated at or after start. There is no upper bound.
func filterExpensesSince(exps []expense.Record, start time.Time) []expense.Record {
	res := make([]expense.Record, 0)
	for _, exp := range exps {
		if !exp.Date.Before(start) {
			res = append(res, exp)
		}
	}
	return res
}

func groupExpenses(exps []expense.Record) Summary {
	totals := make(map[expense.Category]decimal.Decimal)
	for _, exp := range exps {
		if sum, ok := totals[exp.Category]; ok {
			totals[exp.Category] = sum.Add(exp.Amount)
		} else {
			totals[exp.Category] = exp.Amount
		}
	}

	records := make([]CategoryTotal, 0, len(totals))
	total := decimal.Zero
	for cat, am := range totals {
		records = append(records, CategoryTotal{Category: cat, Total: am})
		total = total.Add(am)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Category.String() < records[j].Category.String()
	})

	// percentages stay at zero when the total is zero
	if !total.IsZero() {
		for i := range records {
			records[i].Percent = records[i].Total.Div(total).Mul(hundred)
		}
	}

	// first maximum in label order wins ties
	highest := records[0]
	for _, rec := range records[1:] {
		if rec.Total.GreaterThan(highest.Total) {
			highest = rec
		}
	}

	return Summary{
		Categories: records,
		GrandTotal: total,
		Count:      len(exps),
		Average:    total.Div(decimal.NewFromInt(int64(len(exps)))),
		Highest:    highest,
	}
}
