package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnList_ShouldSortMostRecentFirst(t *testing.T) {
	older := newRecord(t, expense.Food, "10", "old", d0.AddDate(0, 0, -3))
	newest := newRecord(t, expense.Rent, "100", "new", d0)
	middle := newRecord(t, expense.Travel, "30", "mid", d0.AddDate(0, 0, -1))

	res := List([]expense.Record{older, newest, middle})

	assert.Equal(t, []expense.Record{newest, middle, older}, res)
}

func Test_OnList_ShouldKeepInsertionOrderForEqualDates(t *testing.T) {
	first := newRecord(t, expense.Food, "1", "first", d0)
	second := newRecord(t, expense.Food, "2", "second", d0)
	third := newRecord(t, expense.Food, "3", "third", d0)

	res := List([]expense.Record{first, second, third})

	require.Len(t, res, 3)
	assert.Equal(t, "first", res[0].Description)
	assert.Equal(t, "second", res[1].Description)
	assert.Equal(t, "third", res[2].Description)
}

func Test_OnList_ShouldNotMutateInput(t *testing.T) {
	records := []expense.Record{
		newRecord(t, expense.Food, "1", "a", d0.AddDate(0, 0, -1)),
		newRecord(t, expense.Food, "2", "b", d0),
	}

	List(records)

	assert.Equal(t, "a", records[0].Description)
}

func Test_List_ShouldBeOrderedForRandomInput(t *testing.T) {
	res := List(randomRecords(t, 50, d0))

	for i := 1; i < len(res); i++ {
		assert.False(t, res[i].Date.After(res[i-1].Date))
	}
}
