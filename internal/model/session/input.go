package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// dateLayout accepts one or two digit days and months.
const dateLayout = "2-1-2006"

var (
	errCategoryNotNumber = errors.New("category is not a number")
	errAmountNotNumber   = errors.New("amount is not a number")
)

const (
	enterNumberHint      = "Please enter a number."
	invalidChoiceHint    = "Invalid choice. Please try again."
	enterValidNumberHint = "Please enter a valid number."
	positiveAmountHint   = "Amount must be positive."
)

func parseCategory(text string) (expense.Category, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrap(errCategoryNotNumber, text)
	}
	return expense.CategoryByIndex(idx)
}

func parseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errors.Wrap(errAmountNotNumber, text)
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.Wrap(expense.ErrNonPositiveAmount, text)
	}
	return amount, nil
}

// parseDate reads a DD-MM-YYYY date. Impossible calendar dates such as 31-02 are rejected.
func parseDate(text string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(text), loc)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse date")
	}
	return date, nil
}

// hintFor maps a parse failure to the message shown before re-prompting.
func hintFor(err error) string {
	switch {
	case errors.Is(err, errCategoryNotNumber):
		return enterNumberHint
	case errors.Is(err, expense.ErrUnknownCategory):
		return invalidChoiceHint
	case errors.Is(err, errAmountNotNumber):
		return enterValidNumberHint
	case errors.Is(err, expense.ErrNonPositiveAmount):
		return positiveAmountHint
	}
	return invalidChoiceHint
}
