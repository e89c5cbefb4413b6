package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

func TestSpendAggregator_Spend(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	window := entity.PeriodWindow{
		Start: date(2024, time.January, 1),
		End:   date(2024, time.January, 31),
	}

	t.Run("overall scope filters account and window only", func(t *testing.T) {
		ledger := &stubLedger{total: dec("520")}
		aggregator := NewSpendAggregator(ledger)

		total, err := aggregator.Spend(ctx, valueobject.OverallScope(accountID), window)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(dec("520")) {
			t.Errorf("expected 520, got %s", total)
		}

		filter := ledger.lastFilter
		if filter.AccountID != accountID {
			t.Errorf("unexpected account filter %v", filter.AccountID)
		}
		if filter.CategoryID != nil || filter.CategoryName != "" {
			t.Error("overall scope must not filter by category")
		}
		if !filter.ExpensesOnly || !filter.ExcludeCarryOver {
			t.Error("spend must exclude income and carry-over records")
		}
		if !filter.From.Equal(window.Start) || !filter.To.Equal(window.End) {
			t.Errorf("unexpected date range %v..%v", filter.From, filter.To)
		}
	})

	t.Run("category scope forwards category identity", func(t *testing.T) {
		ledger := &stubLedger{total: dec("100")}
		aggregator := NewSpendAggregator(ledger)
		categoryID := uuid.New()
		scope := valueobject.CategoryScope(accountID, categoryID, "Groceries")

		if _, err := aggregator.Spend(ctx, scope, window); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		filter := ledger.lastFilter
		if filter.CategoryID == nil || *filter.CategoryID != categoryID {
			t.Errorf("expected category id filter, got %v", filter.CategoryID)
		}
		if filter.CategoryName != "groceries" {
			t.Errorf("expected normalized category name, got %q", filter.CategoryName)
		}
	})
}

func TestSpendAggregator_LedgerFailureCarriesCode(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("query timeout")
	aggregator := NewSpendAggregator(&failingLedger{err: cause})
	window := entity.PeriodWindow{
		Start: date(2024, time.January, 1),
		End:   date(2024, time.January, 31),
	}

	_, err := aggregator.Spend(ctx, valueobject.OverallScope(uuid.New()), window)
	if err == nil {
		t.Fatal("expected an error from a failing ledger")
	}

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T", err)
	}
	if budgetErr.Code != domainerror.ErrCodeLedgerQueryFailure {
		t.Errorf("unexpected code %s", budgetErr.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("underlying cause must stay unwrappable")
	}
}
