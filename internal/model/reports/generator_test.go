package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports/mock"
)

type calendarConfig bool

func (c calendarConfig) CalendarWindows() bool {
	return bool(c)
}

func Test_OnGenerateReport_ShouldReturnMonthlySummary(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	clock.NowMock.Return(d0)
	storage.GetExpensesMock.Return([]expense.Record{
		newRecord(t, expense.Food, "10", "lunch", d0),
		newRecord(t, expense.Food, "20", "dinner", d0),
		newRecord(t, expense.Rent, "100", "", d0),
	}, nil)

	generator := NewGenerator(calendarConfig(false), storage, clock)
	report, err := generator.GenerateReport(ctx, Monthly)

	require.NoError(t, err)
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, Monthly, report.Window)
	assert.Equal(t, d0, report.End)
	assert.Equal(t, d0.Add(-30*24*time.Hour), report.Start)
	assert.Equal(t, "130", report.Summary.GrandTotal.String())
	assert.Equal(t, expense.Rent, report.Summary.Highest.Category)
}

func Test_OnGenerateReport_ShouldReportEmptyStore(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	clock.NowMock.Return(d0)
	storage.GetExpensesMock.Return([]expense.Record{}, nil)

	generator := NewGenerator(calendarConfig(false), storage, clock)
	report, err := generator.GenerateReport(ctx, Weekly)

	require.NoError(t, err)
	assert.Equal(t, StatusNoExpenses, report.Status)
	assert.Equal(t, 0, report.Summary.Count)
}

func Test_OnGenerateReport_ShouldReportEmptyPeriod(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	clock.NowMock.Return(d0)
	storage.GetExpensesMock.Return([]expense.Record{
		newRecord(t, expense.Travel, "250", "trip", d0.AddDate(0, 0, -40)),
	}, nil)

	generator := NewGenerator(calendarConfig(false), storage, clock)
	report, err := generator.GenerateReport(ctx, Monthly)

	require.NoError(t, err)
	assert.Equal(t, StatusNoExpensesInPeriod, report.Status)
}

func Test_OnGenerateReport_ShouldWrapStorageError(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	storageErr := errors.New("storage is down")
	storage.GetExpensesMock.Return(nil, storageErr)

	generator := NewGenerator(calendarConfig(false), storage, clock)
	report, err := generator.GenerateReport(ctx, Weekly)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "generate report")
}

func Test_OnGenerateReport_ShouldRejectUnknownWindow(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	generator := NewGenerator(calendarConfig(false), storage, clock)
	_, err := generator.GenerateReport(context.Background(), Window(99))

	assert.Error(t, err)
}

func Test_OnGenerateReport_WithCalendarWindows_ShouldAlignToMonth(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	clock.NowMock.Return(d0)
	storage.GetExpensesMock.Return([]expense.Record{
		newRecord(t, expense.Food, "10", "this month", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		newRecord(t, expense.Food, "99", "last month", time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC)),
	}, nil)

	generator := NewGenerator(calendarConfig(true), storage, clock)
	report, err := generator.GenerateReport(ctx, Monthly)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), report.Start)
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, 1, report.Summary.Count)
	assert.Equal(t, "10", report.Summary.GrandTotal.String())
}

func Test_OnListExpenses_ShouldReturnMostRecentFirst(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	older := newRecord(t, expense.Food, "10", "older", d0.AddDate(0, 0, -2))
	newer := newRecord(t, expense.Rent, "100", "newer", d0)
	storage.GetExpensesMock.
		Inspect(func(ctx context.Context) {
			assert.NotNil(m, ctx)
		}).
		Return([]expense.Record{older, newer}, nil)

	generator := NewGenerator(calendarConfig(false), storage, clock)
	res, err := generator.ListExpenses(ctx)

	require.NoError(t, err)
	assert.Equal(t, []expense.Record{newer, older}, res)
}

func Test_OnListExpenses_ShouldWrapStorageError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	storage.GetExpensesMock.Return(nil, errors.New("boom"))

	generator := NewGenerator(calendarConfig(false), storage, clock)
	_, err := generator.ListExpenses(context.Background())

	assert.EqualError(t, err, "list expenses: boom")
}
