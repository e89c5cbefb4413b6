package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/domain/entity"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// EvaluateBudgetInput represents one observation point for a scope.
type EvaluateBudgetInput struct {
	Scope valueobject.BudgetScope
	Kind  valueobject.PeriodKind // Defaults to monthly when empty
}

// EvaluateBudgetOutput is the full budget picture after one evaluation pass.
type EvaluateBudgetOutput struct {
	Window             entity.PeriodWindow
	Spend              decimal.Decimal
	Limit              entity.BudgetLimit
	FiredThreshold     *int
	CompletionRecorded bool
	CompletionCounters entity.CompletionCounters
	Medals             entity.MedalBreakdown
}

// EvaluateBudgetUseCase runs the evaluation pipeline for one scope: ensure
// the active window, aggregate spend, read the limit, fire at most one new
// threshold notification, record completion credit for a closed period, and
// recompute the medal tally. Every step is idempotent, so the caller may
// safely trigger it on every observation point (view activation, ledger
// change) and retry after persistence failures.
type EvaluateBudgetUseCase struct {
	periods     *PeriodCalculator
	aggregator  *SpendAggregator
	limits      *LimitStore
	notifier    *ThresholdNotifier
	completions *CompletionRecorder
}

// NewEvaluateBudgetUseCase creates a new EvaluateBudgetUseCase instance.
func NewEvaluateBudgetUseCase(
	periods *PeriodCalculator,
	aggregator *SpendAggregator,
	limits *LimitStore,
	notifier *ThresholdNotifier,
	completions *CompletionRecorder,
) *EvaluateBudgetUseCase {
	return &EvaluateBudgetUseCase{
		periods:     periods,
		aggregator:  aggregator,
		limits:      limits,
		notifier:    notifier,
		completions: completions,
	}
}

// Execute performs one evaluation pass.
func (uc *EvaluateBudgetUseCase) Execute(ctx context.Context, input EvaluateBudgetInput) (*EvaluateBudgetOutput, error) {
	kind := input.Kind
	if kind == "" {
		kind = valueobject.PeriodKindMonthly
	}

	window, err := uc.periods.ActiveWindow(ctx, input.Scope, kind)
	if err != nil {
		return nil, err
	}

	spend, err := uc.aggregator.Spend(ctx, input.Scope, window)
	if err != nil {
		return nil, err
	}

	limit, err := uc.limits.GetLimit(ctx, input.Scope)
	if err != nil {
		return nil, err
	}

	fired, err := uc.notifier.Evaluate(ctx, input.Scope, spend, limit.Amount, window.PeriodKey())
	if err != nil {
		return nil, err
	}

	recorded, err := uc.completions.TryRecordCompletion(ctx, input.Scope, kind, window, spend, limit.Amount)
	if err != nil {
		return nil, err
	}

	counters, err := uc.completions.Counters(ctx, input.Scope.AccountID)
	if err != nil {
		return nil, err
	}

	return &EvaluateBudgetOutput{
		Window:             window,
		Spend:              spend,
		Limit:              limit,
		FiredThreshold:     fired,
		CompletionRecorded: recorded,
		CompletionCounters: counters,
		Medals:             MedalBreakdown(counters.Total()),
	}, nil
}
