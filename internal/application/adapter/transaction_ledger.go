package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerFilter describes one filtered sum over the transaction ledger.
type LedgerFilter struct {
	AccountID        uuid.UUID
	CategoryID       *uuid.UUID // nil means all categories
	CategoryName     string     // legacy match when CategoryID is nil
	From             time.Time  // inclusive
	To               time.Time  // inclusive
	ExpensesOnly     bool
	ExcludeCarryOver bool
}

// TransactionLedger is the read-only query surface over the transaction
// ledger collaborator. The budget core never mutates the ledger.
type TransactionLedger interface {
	// SumExpenses returns the sum of amounts over records matching the filter,
	// or zero when nothing matches. Results reflect the ledger state at call
	// time; implementations must not cache across ledger mutations.
	SumExpenses(ctx context.Context, filter LedgerFilter) (decimal.Decimal, error)
}
