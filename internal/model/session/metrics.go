package session

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

var histogramCommandTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expense_tracker",
		Subsystem: "session",
		Name:      "histogram_command_time_seconds",
		Help:      "Time spent handling a menu command, including prompts",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 5, 15, 60, 300},
	},
	[]string{"command", "error"},
)

var counterExpensesAdded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expense_tracker",
		Subsystem: "session",
		Name:      "expenses_added_total",
		Help:      "Number of expenses recorded by category",
	},
	[]string{"category"},
)

func observeCommand(command string, elapsed time.Duration, err bool) {
	histogramCommandTime.
		WithLabelValues(command, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

func countExpense(c expense.Category) {
	counterExpensesAdded.WithLabelValues(c.String()).Inc()
}
