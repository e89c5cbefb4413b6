package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// SpendAggregator computes spend totals from the transaction ledger. It is a
// pure read: safe to call repeatedly and always reflecting the ledger state
// at call time.
type SpendAggregator struct {
	ledger adapter.TransactionLedger
}

// NewSpendAggregator creates a new SpendAggregator instance.
func NewSpendAggregator(ledger adapter.TransactionLedger) *SpendAggregator {
	return &SpendAggregator{
		ledger: ledger,
	}
}

// Spend returns the total expense amount for the scope within the window:
// expense records only, carry-over records excluded, dates within
// [window.Start, window.End] inclusive, and, for category scopes, only the
// scope's category.
func (a *SpendAggregator) Spend(ctx context.Context, scope valueobject.BudgetScope, window entity.PeriodWindow) (decimal.Decimal, error) {
	filter := adapter.LedgerFilter{
		AccountID:        scope.AccountID,
		From:             window.Start,
		To:               window.End,
		ExpensesOnly:     true,
		ExcludeCarryOver: true,
	}
	if scope.IsCategory() {
		filter.CategoryID = scope.CategoryID
		filter.CategoryName = scope.NormalizedCategoryName()
	}

	total, err := a.ledger.SumExpenses(ctx, filter)
	if err != nil {
		return decimal.Zero, domainerror.NewBudgetError(domainerror.ErrCodeLedgerQueryFailure, "failed to sum ledger expenses", err)
	}
	return total, nil
}
