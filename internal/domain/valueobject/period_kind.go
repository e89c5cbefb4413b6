package valueobject

import "time"

// PeriodKind represents the kind of rolling period a budget is measured over.
// Only monthly budgets are active today; weekly and yearly are reserved so
// new kinds can be added without touching key encoding.
type PeriodKind string

const (
	PeriodKindMonthly PeriodKind = "monthly"
	PeriodKindWeekly  PeriodKind = "weekly"
	PeriodKindYearly  PeriodKind = "yearly"
)

// AllPeriodKinds lists every known kind, used when clearing persisted windows.
var AllPeriodKinds = []PeriodKind{PeriodKindMonthly, PeriodKindWeekly, PeriodKindYearly}

// IsValid reports whether the kind is one of the known variants.
func (k PeriodKind) IsValid() bool {
	switch k {
	case PeriodKindMonthly, PeriodKindWeekly, PeriodKindYearly:
		return true
	}
	return false
}

// SpanEnd returns the inclusive end of a period of this kind starting at start.
func (k PeriodKind) SpanEnd(start time.Time) time.Time {
	switch k {
	case PeriodKindWeekly:
		return start.AddDate(0, 0, 6)
	case PeriodKindYearly:
		return start.AddDate(1, 0, -1)
	default:
		return start.AddDate(0, 1, -1)
	}
}
