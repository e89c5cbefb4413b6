package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// LimitStore reads and writes configured budget limits. Category limits are
// keyed by category identifier; entries written before identifiers existed
// live under a name-based key, which GetLimit still honors until a new write
// canonicalizes the entry.
type LimitStore struct {
	store   adapter.KeyValueStore
	periods *PeriodCalculator
}

// NewLimitStore creates a new LimitStore instance.
func NewLimitStore(store adapter.KeyValueStore, periods *PeriodCalculator) *LimitStore {
	return &LimitStore{
		store:   store,
		periods: periods,
	}
}

// GetLimit returns the configured limit for the scope. Zero means unset.
// Category scopes probe the id-keyed entry first and fall back to the legacy
// name-keyed entry when the canonical one is absent or not positive.
func (s *LimitStore) GetLimit(ctx context.Context, scope valueobject.BudgetScope) (entity.BudgetLimit, error) {
	amount, ok, err := s.store.GetDecimal(ctx, valueobject.LimitKey(scope))
	if err != nil {
		return entity.BudgetLimit{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read limit", err)
	}

	if (!ok || !amount.IsPositive()) && scope.CategoryID != nil {
		if legacyKey, hasLegacy := valueobject.LegacyLimitKey(scope); hasLegacy {
			legacy, legacyOK, err := s.store.GetDecimal(ctx, legacyKey)
			if err != nil {
				return entity.BudgetLimit{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to read legacy limit", err)
			}
			if legacyOK && legacy.IsPositive() {
				amount = legacy
			}
		}
	}

	return entity.BudgetLimit{Scope: scope, Amount: amount}, nil
}

// SetLimit persists the limit for the scope. When the scope resolves to a
// category identifier the write goes to the id-keyed entry and any legacy
// name-keyed entry for the same category is removed so the two can never
// diverge.
func (s *LimitStore) SetLimit(ctx context.Context, scope valueobject.BudgetScope, amount decimal.Decimal) error {
	if err := s.store.SetDecimal(ctx, valueobject.LimitKey(scope), amount); err != nil {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to persist limit", err)
	}

	if scope.CategoryID != nil {
		if legacyKey, hasLegacy := valueobject.LegacyLimitKey(scope); hasLegacy {
			if err := s.store.Delete(ctx, legacyKey); err != nil {
				return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to remove legacy limit", err)
			}
		}
	}
	return nil
}

// ClearLimit removes the configured limit for the scope together with its
// persisted period windows.
func (s *LimitStore) ClearLimit(ctx context.Context, scope valueobject.BudgetScope) error {
	if err := s.store.Delete(ctx, valueobject.LimitKey(scope)); err != nil {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to delete limit", err)
	}
	if legacyKey, hasLegacy := valueobject.LegacyLimitKey(scope); hasLegacy {
		if err := s.store.Delete(ctx, legacyKey); err != nil {
			return domainerror.NewBudgetError(domainerror.ErrCodeBudgetStoreFailure, "failed to delete legacy limit", err)
		}
	}

	for _, kind := range valueobject.AllPeriodKinds {
		if err := s.periods.ClearWindow(ctx, scope, kind); err != nil {
			return err
		}
	}
	return nil
}
