package entity

import (
	"testing"
	"time"

	"github.com/budget-guard/backend/internal/domain/valueobject"
)

func TestPeriodWindowClosedAt(t *testing.T) {
	window := PeriodWindow{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name   string
		now    time.Time
		closed bool
	}{
		{"mid window", time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC), false},
		{"last day midnight", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), false},
		{"last day noon", time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC), false},
		{"last day final minute", time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC), false},
		{"day after midnight", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), true},
		{"day after noon", time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := window.ClosedAt(tc.now); got != tc.closed {
				t.Errorf("ClosedAt(%s) = %v, want %v", tc.now, got, tc.closed)
			}
		})
	}
}

func TestDefaultWindowMonthly(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	window := DefaultWindow(now, valueobject.PeriodKindMonthly)

	if !window.Start.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %s", window.Start)
	}
	if !window.End.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end %s", window.End)
	}
	if !window.Contains(now) {
		t.Error("default window must contain now")
	}
}
