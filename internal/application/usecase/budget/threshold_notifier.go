package budget

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// Thresholds is the ordered set of notification boundaries, highest first.
// The descending scan stops at the first unclaimed threshold the spend ratio
// reaches, so a jump straight past several boundaries announces only the
// highest one for that period. Lower boundaries are never back-filled.
var Thresholds = []int{100, 80, 50}

// ThresholdNotifier decides which single threshold, if any, newly qualifies
// for the current period and claims it so it is announced at most once.
type ThresholdNotifier struct {
	store      adapter.KeyValueStore
	dispatcher adapter.NotificationDispatcher
}

// NewThresholdNotifier creates a new ThresholdNotifier instance.
func NewThresholdNotifier(store adapter.KeyValueStore, dispatcher adapter.NotificationDispatcher) *ThresholdNotifier {
	return &ThresholdNotifier{
		store:      store,
		dispatcher: dispatcher,
	}
}

// Evaluate returns the threshold that newly qualifies under the current
// spend/limit ratio, or nil when nothing fires. When a threshold fires its
// flag is set for the period and the notification is handed to the
// dispatcher; dispatch failures are logged but never undo the claim.
func (n *ThresholdNotifier) Evaluate(ctx context.Context, scope valueobject.BudgetScope, spend, limit decimal.Decimal, periodKey string) (*int, error) {
	if !limit.IsPositive() {
		return nil, nil
	}

	pct := spendPercent(spend, limit)
	for _, threshold := range Thresholds {
		if pct < threshold {
			continue
		}

		flagKey := valueobject.NotificationFlagKey(scope, periodKey, threshold)
		claimed, err := n.store.GetBool(ctx, flagKey)
		if err != nil {
			return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read notification flag", err)
		}
		if claimed {
			// The highest reached threshold was already announced for this
			// period; lower ones are intentionally skipped.
			return nil, nil
		}

		if err := n.store.SetBool(ctx, flagKey, true); err != nil {
			return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to claim notification flag", err)
		}

		if n.dispatcher != nil {
			notification := entity.ThresholdNotification{
				Scope:     scope,
				PeriodKey: periodKey,
				Threshold: threshold,
				Spend:     spend,
				Limit:     limit,
			}
			if err := n.dispatcher.Dispatch(ctx, notification); err != nil {
				slog.Warn("threshold notification dispatch failed",
					"account_id", scope.AccountID,
					"period_key", periodKey,
					"threshold", threshold,
					"error", err,
				)
			}
		}

		t := threshold
		return &t, nil
	}

	return nil, nil
}

// spendPercent returns round(min(100, spend/limit*100)).
func spendPercent(spend, limit decimal.Decimal) int {
	pct := spend.Div(limit).Mul(decimal.NewFromInt(100))
	capped := decimal.NewFromInt(100)
	if pct.GreaterThan(capped) {
		pct = capped
	}
	return int(pct.Round(0).IntPart())
}
