package reports

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

type Window int

const (
	Weekly Window = iota + 1
	Monthly
)

const day = 24 * time.Hour

var windowDays = map[Window]int{
	Weekly:  7,
	Monthly: 30,
}

var windowNames = map[Window]string{
	Weekly:  "Weekly",
	Monthly: "Monthly",
}

func (w Window) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

func (w Window) days() int {
	return windowDays[w]
}

// Start returns the inclusive lower bound of the window ending at t.
// The lookback is a fixed number of days, so Monthly is not a calendar month.
func (w Window) Start(t time.Time) time.Time {
	return t.Add(-time.Duration(w.days()) * day)
}

// CalendarStart aligns the lower bound to the beginning of the current week or month.
func (w Window) CalendarStart(t time.Time) time.Time {
	switch w {
	case Weekly:
		return now.With(t).BeginningOfWeek()
	case Monthly:
		return now.With(t).BeginningOfMonth()
	}
	return w.Start(t)
}
