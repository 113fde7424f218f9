package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

type Category int

const (
	Food Category = iota + 1
	Rent
	Travel
	Entertainment
	Utilities
	Healthcare
	Shopping
	Other
)

var categoryNames = map[Category]string{
	Food:          "Food",
	Rent:          "Rent",
	Travel:        "Travel",
	Entertainment: "Entertainment",
	Utilities:     "Utilities",
	Healthcare:    "Healthcare",
	Shopping:      "Shopping",
	Other:         "Other",
}

var categories = []Category{Food, Rent, Travel, Entertainment, Utilities, Healthcare, Shopping, Other}

// Categories returns every category in menu order.
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// CategoryByIndex resolves a 1-based menu index.
func CategoryByIndex(idx int) (Category, error) {
	if idx < 1 || idx > len(categories) {
		return 0, errors.Wrapf(ErrUnknownCategory, "index %d", idx)
	}
	return categories[idx-1], nil
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Record is a single logged expense. Records are never modified after creation.
type Record struct {
	ID          uuid.UUID
	Category    Category
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// NewRecordAt builds a validated record. A zero date is replaced with now.
func NewRecordAt(category Category, amount decimal.Decimal, description string, date, now time.Time) (Record, error) {
	if !category.Valid() {
		return Record{}, errors.Wrapf(ErrUnknownCategory, "category %d", int(category))
	}
	if !amount.IsPositive() {
		return Record{}, errors.Wrapf(ErrNonPositiveAmount, "amount %s", amount.String())
	}
	if date.IsZero() {
		date = now
	}
	return Record{
		ID:          uuid.New(),
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
	}, nil
}
