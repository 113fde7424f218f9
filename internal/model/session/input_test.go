package session

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_ParseCategory(t *testing.T) {
	cases := []struct {
		input    string
		expected expense.Category
		hint     string
	}{
		{"1", expense.Food, ""},
		{" 8 ", expense.Other, ""},
		{"0", 0, invalidChoiceHint},
		{"9", 0, invalidChoiceHint},
		{"food", 0, enterNumberHint},
		{"", 0, enterNumberHint},
		{"2.5", 0, enterNumberHint},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			c, err := parseCategory(tc.input)
			if tc.hint == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, c)
				return
			}
			assert.Equal(t, tc.hint, hintFor(err))
		})
	}
}

func Test_ParseAmount(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		hint     string
	}{
		{"12", "12", ""},
		{"12.345", "12.345", ""},
		{" 0.01 ", "0.01", ""},
		{"-5", "", positiveAmountHint},
		{"0", "", positiveAmountHint},
		{"abc", "", enterValidNumberHint},
		{"", "", enterValidNumberHint},
		{"1,5", "", enterValidNumberHint},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			amount, err := parseAmount(tc.input)
			if tc.hint == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, amount.String())
				return
			}
			assert.Equal(t, tc.hint, hintFor(err))
		})
	}
}

func Test_ParseDate(t *testing.T) {
	date, err := parseDate("05-03-2024", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), date)

	date, err = parseDate("1-3-2024", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), date)

	for _, bad := range []string{"31-02-2024", "2024-03-05", "05/03/2024", "yesterday", "32-01-2024", "29-02-2023"} {
		_, err = parseDate(bad, time.UTC)
		assert.Error(t, err, bad)
	}
}

func Test_HintFor_UnknownError(t *testing.T) {
	assert.Equal(t, invalidChoiceHint, hintFor(errors.New("anything")))
}
