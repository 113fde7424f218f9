package reports

import (
	"sort"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// List returns the records ordered by date, most recent first.
// Records with equal dates keep their insertion order.
func List(records []expense.Record) []expense.Record {
	res := make([]expense.Record, len(records))
	copy(res, records)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.After(res[j].Date)
	})
	return res
}
