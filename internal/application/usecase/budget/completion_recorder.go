package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// CompletionRecorder judges closed periods and awards cumulative completion
// credit. A period counts as a success when its spend did not exceed the
// limit; each period is credited at most once, guarded by a persistent flag.
// Counters are persisted per account, never process-wide.
type CompletionRecorder struct {
	store adapter.KeyValueStore
	clock adapter.Clock
}

// NewCompletionRecorder creates a new CompletionRecorder instance.
func NewCompletionRecorder(store adapter.KeyValueStore, clock adapter.Clock) *CompletionRecorder {
	return &CompletionRecorder{
		store: store,
		clock: clock,
	}
}

// TryRecordCompletion records completion credit for the window when all of
// the following hold: the limit is set, the window has closed, spend did not
// exceed the limit, and the period has not been credited before. Returns true
// only when the counter was actually incremented.
//
// An over-budget closed period sets no flag, so it stays eligible should the
// ledger later be revised below the limit.
func (r *CompletionRecorder) TryRecordCompletion(ctx context.Context, scope valueobject.BudgetScope, kind valueobject.PeriodKind, window entity.PeriodWindow, spend, limit decimal.Decimal) (bool, error) {
	if !limit.IsPositive() {
		return false, nil
	}
	if !window.ClosedAt(r.clock.Now()) {
		return false, nil
	}
	if spend.GreaterThan(limit) {
		return false, nil
	}

	flagKey := valueobject.CompletionFlagKey(scope, kind, window.PeriodKey())
	recorded, err := r.store.GetBool(ctx, flagKey)
	if err != nil {
		return false, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read completion flag", err)
	}
	if recorded {
		return false, nil
	}

	if err := r.store.SetBool(ctx, flagKey, true); err != nil {
		return false, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to set completion flag", err)
	}

	counterKind := valueobject.CounterOverall
	if scope.IsCategory() {
		counterKind = valueobject.CounterCategory
	}
	counterKey := valueobject.CounterKey(scope.AccountID, counterKind)

	count, err := r.store.GetInt(ctx, counterKey)
	if err != nil {
		return false, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read completion counter", err)
	}
	if err := r.store.SetInt(ctx, counterKey, count+1); err != nil {
		return false, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to increment completion counter", err)
	}

	return true, nil
}

// Counters returns the account's completion counters.
func (r *CompletionRecorder) Counters(ctx context.Context, accountID uuid.UUID) (entity.CompletionCounters, error) {
	overall, err := r.store.GetInt(ctx, valueobject.CounterKey(accountID, valueobject.CounterOverall))
	if err != nil {
		return entity.CompletionCounters{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read overall counter", err)
	}
	category, err := r.store.GetInt(ctx, valueobject.CounterKey(accountID, valueobject.CounterCategory))
	if err != nil {
		return entity.CompletionCounters{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read category counter", err)
	}
	return entity.CompletionCounters{
		Overall:  int(overall),
		Category: int(category),
	}, nil
}
