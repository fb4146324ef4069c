package calculator

import (
	"time"

	"github.com/mmynk/expensetracker/internal/models"
)

// ResolvePeriod turns a period keyword into an inclusive date range around
// today. Weeks start on Monday. PeriodAll returns explicit unchanged, so an
// open or caller-supplied range applies.
func ResolvePeriod(period models.Period, today time.Time, explicit models.DateRange) models.DateRange {
	day := startOfDay(today)

	switch period {
	case models.PeriodDay:
		return models.DateRange{Start: day, End: day}
	case models.PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return models.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case models.PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return models.DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	default:
		return models.DateRange{Start: truncate(explicit.Start), End: truncate(explicit.End)}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func truncate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return startOfDay(t)
}
