package entity

import (
	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// ThresholdNotification is the payload handed to the notification dispatcher
// when a spending threshold newly qualifies for the current period.
type ThresholdNotification struct {
	Scope     valueobject.BudgetScope
	PeriodKey string
	Threshold int // Percent of the limit that was crossed: 50, 80 or 100
	Spend     decimal.Decimal
	Limit     decimal.Decimal
}
