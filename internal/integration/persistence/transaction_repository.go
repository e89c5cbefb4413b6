package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	"github.com/budget-guard/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionLedger interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction ledger repository.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionLedger {
	return &transactionRepository{
		db: db,
	}
}

// SumExpenses returns the sum of amounts over ledger records matching the
// filter, or zero when nothing matches.
func (r *transactionRepository) SumExpenses(ctx context.Context, filter adapter.LedgerFilter) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ?", filter.AccountID).
		Where("date >= ? AND date <= ?", filter.From, filter.To)

	if filter.ExpensesOnly {
		query = query.Where("type = ?", string(entity.TransactionTypeExpense))
	}
	if filter.ExcludeCarryOver {
		query = query.Where("is_carry_over = ?", false)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	} else if filter.CategoryName != "" {
		query = query.Where("LOWER(category_name) = ?", filter.CategoryName)
	}

	var sumResult struct {
		Total decimal.Decimal
	}
	result := query.Select("COALESCE(SUM(amount), 0) as total").Scan(&sumResult)
	if result.Error != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", result.Error)
	}

	return sumResult.Total, nil
}
