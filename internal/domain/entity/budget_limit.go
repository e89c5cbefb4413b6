package entity

import (
	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// BudgetLimit is a configured spending cap for a scope. An amount of zero or
// less means no limit is configured, not a zero budget.
type BudgetLimit struct {
	Scope  valueobject.BudgetScope
	Amount decimal.Decimal
}

// IsSet reports whether the limit is actually configured.
func (l BudgetLimit) IsSet() bool {
	return l.Amount.IsPositive()
}
