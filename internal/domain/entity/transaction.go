package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger record.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction is one record of the transaction ledger. The budget core only
// reads filtered sums over these records; it never mutates the ledger.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID // Optional, can be uncategorized
	CategoryName string     // Denormalized for legacy name-keyed budget matching
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Type         TransactionType
	IsCarryOver  bool // Balance carried in from a previous period; excluded from spend
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	categoryName string,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	isCarryOver bool,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		AccountID:    accountID,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Date:         date,
		Description:  description,
		Amount:       amount,
		Type:         transactionType,
		IsCarryOver:  isCarryOver,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
