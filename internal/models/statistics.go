package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period names a statistics window relative to today.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod accepts the four period keywords. Empty means PeriodAll.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodAll, nil
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodAll:
		return p, nil
	}
	return "", ErrInvalidPeriod
}

// DateRange is an inclusive range of calendar dates. A zero bound is open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// CategoryTotal is the sum of expense amounts for one category inside a
// date range, as returned by storage.
type CategoryTotal struct {
	// CategoryID is empty for expenses without a category.
	CategoryID string
	Name       string
	Color      string
	Total      decimal.Decimal
	Count      int
}

// CategoryBreakdown is one row of the statistics output.
type CategoryBreakdown struct {
	Name       string
	Color      string
	Total      decimal.Decimal
	Percentage float64
}

// Statistics is the aggregate over a period.
type Statistics struct {
	Period       Period
	Range        DateRange
	TotalAmount  decimal.Decimal
	ExpenseCount int
	Categories   []CategoryBreakdown
}
