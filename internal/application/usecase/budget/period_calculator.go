// Package budget contains the budget tracking use cases: rolling period
// windows, spend aggregation, limit storage, threshold notifications,
// completion credit and the medal tally derived from it.
package budget

import (
	"context"
	"time"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// PeriodCalculator maintains the active rolling window for a (scope, period
// kind) pair. Windows are persisted in the key-value store; when nothing is
// persisted the calendar period containing today is returned without being
// written back.
type PeriodCalculator struct {
	store adapter.KeyValueStore
	clock adapter.Clock
}

// NewPeriodCalculator creates a new PeriodCalculator instance.
func NewPeriodCalculator(store adapter.KeyValueStore, clock adapter.Clock) *PeriodCalculator {
	return &PeriodCalculator{
		store: store,
		clock: clock,
	}
}

// ActiveWindow returns the persisted window for the scope, or the read-only
// calendar default when no window has ever been set.
func (c *PeriodCalculator) ActiveWindow(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind) (entity.PeriodWindow, error) {
	start, startOK, err := c.store.GetTime(ctx, valueobject.WindowStartKey(scope, kind))
	if err != nil {
		return entity.PeriodWindow{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read window start", err)
	}
	end, endOK, err := c.store.GetTime(ctx, valueobject.WindowEndKey(scope, kind))
	if err != nil {
		return entity.PeriodWindow{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read window end", err)
	}

	if !startOK || !endOK {
		return entity.DefaultWindow(c.clock.Now(), kind), nil
	}
	return entity.PeriodWindow{Start: start, End: end}, nil
}

// SetWindow persists a caller-chosen window for the scope. The start is
// clamped so it never precedes today; an end before the start (or a zero end)
// is recomputed so the window spans exactly one period of the given kind.
// Inputs are clamped rather than rejected.
func (c *PeriodCalculator) SetWindow(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind, start, end time.Time) (entity.PeriodWindow, error) {
	today := dayStart(c.clock.Now())
	start = dayStart(start)
	if start.Before(today) {
		start = today
	}

	end = dayStart(end)
	if end.IsZero() || end.Before(start) {
		end = kind.SpanEnd(start)
	}

	window := entity.PeriodWindow{Start: start, End: end}
	if err := c.persist(ctx, scope, kind, window); err != nil {
		return entity.PeriodWindow{}, err
	}
	return window, nil
}

// ShiftStartForward moves the window start one period later and recomputes
// the end so the span stays exactly one period.
func (c *PeriodCalculator) ShiftStartForward(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind) (entity.PeriodWindow, error) {
	return c.shift(ctx, scope, kind, 1)
}

// ShiftEndBackward moves the window end one period earlier and recomputes the
// start so the span stays exactly one period.
func (c *PeriodCalculator) ShiftEndBackward(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind) (entity.PeriodWindow, error) {
	return c.shift(ctx, scope, kind, -1)
}

// ClearWindow removes the persisted window for the scope and kind. Called
// when the scope's budget limit is cleared.
func (c *PeriodCalculator) ClearWindow(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind) error {
	if err := c.store.Delete(ctx, valueobject.WindowStartKey(scope, kind)); err != nil {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to delete window start", err)
	}
	if err := c.store.Delete(ctx, valueobject.WindowEndKey(scope, kind)); err != nil {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to delete window end", err)
	}
	return nil
}

// shift moves the whole window by n periods. Because the span is always
// exactly one period, moving one bound and recomputing the other is the same
// as moving the window; shifting the start avoids month-end normalization
// artifacts in date arithmetic.
func (c *PeriodCalculator) shift(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind, n int) (entity.PeriodWindow, error) {
	current, err := c.ActiveWindow(ctx, scope, kind)
	if err != nil {
		return entity.PeriodWindow{}, err
	}

	start := shiftByPeriod(current.Start, kind, n)
	next := entity.PeriodWindow{Start: start, End: kind.SpanEnd(start)}

	// Same anti-backdating clamp as SetWindow.
	today := dayStart(c.clock.Now())
	if next.Start.Before(today) {
		next.Start = today
		next.End = kind.SpanEnd(next.Start)
	}

	if err := c.persist(ctx, scope, kind, next); err != nil {
		return entity.PeriodWindow{}, err
	}
	return next, nil
}

func (c *PeriodCalculator) persist(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind, window entity.PeriodWindow) error {
	if err := c.store.SetTime(ctx, valueobject.WindowStartKey(scope, kind), window.Start); err != nil {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to persist window start", err)
	}
	if err := c.store.SetTime(ctx, valueobject.WindowEndKey(scope, kind), window.End); err != nil {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to persist window end", err)
	}
	return nil
}

// shiftByPeriod moves a date by n periods of the given kind.
func shiftByPeriod(date time.Time, kind valueobject.PeriodKind, n int) time.Time {
	switch kind {
	case valueobject.PeriodKindWeekly:
		return date.AddDate(0, 0, 7*n)
	case valueobject.PeriodKindYearly:
		return date.AddDate(n, 0, 0)
	default:
		return date.AddDate(0, n, 0)
	}
}

// dayStart truncates a time to midnight in its own location.
func dayStart(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
