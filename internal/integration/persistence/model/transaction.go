// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryName string          `gorm:"type:varchar(255)"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Description  string          `gorm:"type:varchar(500)"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type         string          `gorm:"type:varchar(20);not null;index"`
	IsCarryOver  bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		AccountID:    m.AccountID,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		Date:         m.Date,
		Description:  m.Description,
		Amount:       m.Amount,
		Type:         entity.TransactionType(m.Type),
		IsCarryOver:  m.IsCarryOver,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		AccountID:    transaction.AccountID,
		CategoryID:   transaction.CategoryID,
		CategoryName: transaction.CategoryName,
		Date:         transaction.Date,
		Description:  transaction.Description,
		Amount:       transaction.Amount,
		Type:         string(transaction.Type),
		IsCarryOver:  transaction.IsCarryOver,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
