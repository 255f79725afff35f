package analytics

import (
	"errors"
	"time"
)

// Period selects the reporting window for a sales report.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var ErrInvalidPeriod = errors.New(`invalid period. Use "day", "week", or "month"`)

// DateRange is an inclusive reporting window in local time.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// RangeFor computes the window for a period relative to now:
// day = start of today, week = most recent Monday, month = first of the
// month. Every window ends at the end of the current day.
func RangeFor(period Period, now time.Time) (DateRange, error) {
	y, m, d := now.Date()
	loc := now.Location()
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)

	var start time.Time
	switch period {
	case PeriodDay:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	case PeriodWeek:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		start = time.Date(y, m, d-daysSinceMonday, 0, 0, 0, 0, loc)
	case PeriodMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	default:
		return DateRange{}, ErrInvalidPeriod
	}
	return DateRange{Start: start, End: end}, nil
}
