package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

func TestLimitStore_GetLimit(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	categoryID := uuid.New()
	scope := valueobject.CategoryScope(accountID, categoryID, "Groceries")

	t.Run("absent limit reads as unset", func(t *testing.T) {
		store := newMemStore()
		limits := newTestLimitStore(store)

		limit, err := limits.GetLimit(ctx, scope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limit.IsSet() {
			t.Errorf("expected unset limit, got %s", limit.Amount)
		}
	})

	t.Run("legacy name-keyed limit is honored", func(t *testing.T) {
		store := newMemStore()
		limits := newTestLimitStore(store)

		legacyKey, ok := valueobject.LegacyLimitKey(scope)
		if !ok {
			t.Fatal("expected a legacy key for a named category scope")
		}
		if err := store.SetDecimal(ctx, legacyKey, dec("250")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		limit, err := limits.GetLimit(ctx, scope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !limit.Amount.Equal(dec("250")) {
			t.Errorf("expected legacy 250, got %s", limit.Amount)
		}
	})

	t.Run("id-keyed limit wins over legacy", func(t *testing.T) {
		store := newMemStore()
		limits := newTestLimitStore(store)

		legacyKey, _ := valueobject.LegacyLimitKey(scope)
		_ = store.SetDecimal(ctx, legacyKey, dec("250"))
		_ = store.SetDecimal(ctx, valueobject.LimitKey(scope), dec("400"))

		limit, err := limits.GetLimit(ctx, scope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !limit.Amount.Equal(dec("400")) {
			t.Errorf("expected canonical 400, got %s", limit.Amount)
		}
	})

	t.Run("non-positive amount is unset", func(t *testing.T) {
		store := newMemStore()
		limits := newTestLimitStore(store)
		overall := valueobject.OverallScope(accountID)

		_ = store.SetDecimal(ctx, valueobject.LimitKey(overall), dec("-5"))

		limit, err := limits.GetLimit(ctx, overall)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limit.IsSet() {
			t.Error("negative stored amount must read as unset")
		}
	})
}

func TestLimitStore_SetLimit(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	categoryID := uuid.New()
	scope := valueobject.CategoryScope(accountID, categoryID, "Groceries")

	t.Run("write canonicalizes and removes the legacy entry", func(t *testing.T) {
		store := newMemStore()
		limits := newTestLimitStore(store)

		legacyKey, _ := valueobject.LegacyLimitKey(scope)
		_ = store.SetDecimal(ctx, legacyKey, dec("250"))

		if err := limits.SetLimit(ctx, scope, dec("500")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if store.has(legacyKey) {
			t.Error("expected legacy entry removed after canonical write")
		}
		limit, _ := limits.GetLimit(ctx, scope)
		if !limit.Amount.Equal(dec("500")) {
			t.Errorf("expected 500, got %s", limit.Amount)
		}
	})

	t.Run("name-only scope keeps writing the name key", func(t *testing.T) {
		store := newMemStore()
		limits := newTestLimitStore(store)
		legacyScope := valueobject.CategoryScope(accountID, uuid.Nil, "Dining Out")

		if err := limits.SetLimit(ctx, legacyScope, dec("120")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		limit, err := limits.GetLimit(ctx, legacyScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !limit.Amount.Equal(dec("120")) {
			t.Errorf("expected 120, got %s", limit.Amount)
		}
	})
}

func TestLimitStore_ClearLimit(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	scope := valueobject.OverallScope(accountID)
	kind := valueobject.PeriodKindMonthly

	store := newMemStore()
	clock := &stubClock{now: date(2024, time.March, 1)}
	periods := NewPeriodCalculator(store, clock)
	limits := NewLimitStore(store, periods)

	if err := limits.SetLimit(ctx, scope, dec("1000")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := periods.SetWindow(ctx, scope, kind, date(2024, time.March, 1), time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := limits.ClearLimit(ctx, scope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	limit, _ := limits.GetLimit(ctx, scope)
	if limit.IsSet() {
		t.Error("expected limit cleared")
	}
	if store.has(valueobject.WindowStartKey(scope, kind)) || store.has(valueobject.WindowEndKey(scope, kind)) {
		t.Error("clearing the limit must delete the persisted window")
	}
}

func newTestLimitStore(store *memStore) *LimitStore {
	clock := &stubClock{now: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}
	return NewLimitStore(store, NewPeriodCalculator(store, clock))
}

func TestLimitStore_StoreFailureCarriesCode(t *testing.T) {
	ctx := context.Background()
	scope := valueobject.OverallScope(uuid.New())
	cause := errors.New("connection refused")
	store := &failingStore{err: cause}
	clock := &stubClock{now: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}
	limits := NewLimitStore(store, NewPeriodCalculator(store, clock))

	_, err := limits.GetLimit(ctx, scope)
	if err == nil {
		t.Fatal("expected an error from a failing store")
	}

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T", err)
	}
	if budgetErr.Code != domainerror.ErrCodeBudgetStoreFailure {
		t.Errorf("unexpected code %s", budgetErr.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("underlying cause must stay unwrappable")
	}
}
