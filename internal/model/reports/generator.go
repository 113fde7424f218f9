package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

//go:generate minimock -i expensesStorage -o ./mock/ -s "_mock.go"
//go:generate minimock -i clock -o ./mock/ -s "_mock.go"

type expensesStorage interface {
	GetExpenses(ctx context.Context) ([]expense.Record, error)
}

type clock interface {
	Now() time.Time
}

type config interface {
	CalendarWindows() bool
}

// ClockFunc adapts a plain function to the clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type Status int

const (
	StatusOK Status = iota
	StatusNoExpenses
	StatusNoExpensesInPeriod
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoExpenses:
		return "no-expenses"
	case StatusNoExpensesInPeriod:
		return "no-expenses-in-period"
	}
	return "unknown"
}

type Report struct {
	Window  Window
	Start   time.Time
	End     time.Time
	Status  Status
	Summary Summary
}

type Generator struct {
	storage  expensesStorage
	clock    clock
	calendar bool
}

func NewGenerator(config config, storage expensesStorage, clock clock) *Generator {
	return &Generator{
		storage:  storage,
		clock:    clock,
		calendar: config.CalendarWindows(),
	}
}

func (g *Generator) GenerateReport(ctx context.Context, window Window) (report *Report, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("window", window.String())

	logger.Debug("GenerateReport - start", zap.Stringer("window", window))
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
			return
		}
		logger.Debug("GenerateReport - end",
			zap.Stringer("window", window),
			zap.Stringer("status", report.Status),
			zap.Int("count", report.Summary.Count))
	}()

	if _, ok := windowDays[window]; !ok {
		return nil, errors.Errorf("generate report: unsupported window %d", int(window))
	}

	expenses, err := g.storage.GetExpenses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	end := g.clock.Now()
	start := window.Start(end)
	if g.calendar {
		start = window.CalendarStart(end)
	}

	report = &Report{Window: window, Start: start, End: end}
	if len(expenses) == 0 {
		report.Status = StatusNoExpenses
		return report, nil
	}

	summary, ok := summarizeSince(expenses, start, end, window)
	if !ok {
		report.Status = StatusNoExpensesInPeriod
		return report, nil
	}
	report.Status = StatusOK
	report.Summary = summary
	return report, nil
}

// ListExpenses returns every stored expense, most recent first.
func (g *Generator) ListExpenses(ctx context.Context) ([]expense.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "listExpenses")
	defer span.Finish()

	expenses, err := g.storage.GetExpenses(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "list expenses")
	}
	return List(expenses), nil
}
