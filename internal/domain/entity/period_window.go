// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// PeriodWindow is the concrete date range a budget is currently measured
// against. Both bounds are inclusive day-precision dates; a monthly window
// always spans exactly one calendar month.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// DefaultWindow returns the calendar period of the given kind containing now.
// For monthly budgets that is the first through the last day of the current
// month.
func DefaultWindow(now time.Time, kind valueobject.PeriodKind) PeriodWindow {
	loc := now.Location()
	var start time.Time
	switch kind {
	case valueobject.PeriodKindWeekly:
		// Week starts on Monday
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, loc)
	case valueobject.PeriodKindYearly:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}
	return PeriodWindow{Start: start, End: kind.SpanEnd(start)}
}

// PeriodKey returns the stable per-period identifier derived from the window
// end, used to deduplicate notifications and completion credit.
func (w PeriodWindow) PeriodKey() string {
	return valueobject.PeriodKeyOf(w.End)
}

// Contains reports whether the given date falls inside the window.
func (w PeriodWindow) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// ClosedAt reports whether the window has ended as of now. The end bound is
// a day-precision date, so the comparison works on the day containing now:
// the window stays open through the whole of its last day.
func (w PeriodWindow) ClosedAt(now time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.After(w.End)
}
