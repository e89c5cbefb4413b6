package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	"github.com/budget-guard/backend/internal/integration/persistence/model"
	"github.com/budget-guard/backend/test/integration/mock"
)

func seedTransaction(t *testing.T, db *gorm.DB, accountID uuid.UUID, categoryID *uuid.UUID, categoryName string, day time.Time, amount string, txType entity.TransactionType, carryOver bool) {
	t.Helper()

	record := entity.NewTransaction(
		accountID,
		categoryID,
		categoryName,
		day,
		"seeded",
		decimal.RequireFromString(amount),
		txType,
		carryOver,
	)
	if err := db.Create(model.TransactionFromEntity(record)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}

func TestTransactionRepository_SumExpenses(t *testing.T) {
	ctx := context.Background()
	db, err := mock.NewDb()
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	ledger := NewTransactionRepository(db)

	accountID := uuid.New()
	otherAccount := uuid.New()
	groceriesID := uuid.New()
	diningID := uuid.New()
	jan := func(day int) time.Time {
		return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	}

	// In-window expenses: 300 + 220 = 520.
	seedTransaction(t, db, accountID, &groceriesID, "Groceries", jan(5), "300", entity.TransactionTypeExpense, false)
	seedTransaction(t, db, accountID, &diningID, "Dining Out", jan(12), "220", entity.TransactionTypeExpense, false)
	// Excluded: carry-over, income, other account, out of window.
	seedTransaction(t, db, accountID, nil, "", jan(1), "200", entity.TransactionTypeExpense, true)
	seedTransaction(t, db, accountID, nil, "", jan(15), "300", entity.TransactionTypeIncome, false)
	seedTransaction(t, db, otherAccount, &groceriesID, "Groceries", jan(10), "999", entity.TransactionTypeExpense, false)
	seedTransaction(t, db, accountID, &groceriesID, "Groceries", time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), "50", entity.TransactionTypeExpense, false)

	baseFilter := adapter.LedgerFilter{
		AccountID:        accountID,
		From:             jan(1),
		To:               jan(31),
		ExpensesOnly:     true,
		ExcludeCarryOver: true,
	}

	t.Run("account-wide sum excludes carry-over and income", func(t *testing.T) {
		total, err := ledger.SumExpenses(ctx, baseFilter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("520")) {
			t.Errorf("got %s, want 520", total)
		}
	})

	t.Run("category filter matches by id", func(t *testing.T) {
		filter := baseFilter
		filter.CategoryID = &groceriesID

		total, err := ledger.SumExpenses(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("300")) {
			t.Errorf("got %s, want 300", total)
		}
	})

	t.Run("legacy category filter matches by normalized name", func(t *testing.T) {
		filter := baseFilter
		filter.CategoryName = "dining out"

		total, err := ledger.SumExpenses(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("220")) {
			t.Errorf("got %s, want 220", total)
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		filter := baseFilter
		filter.From = jan(5)
		filter.To = jan(12)

		total, err := ledger.SumExpenses(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("520")) {
			t.Errorf("got %s, want 520", total)
		}
	})

	t.Run("empty match sums to zero", func(t *testing.T) {
		filter := baseFilter
		filter.AccountID = uuid.New()

		total, err := ledger.SumExpenses(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("got %s, want 0", total)
		}
	})

	t.Run("no caching across ledger mutations", func(t *testing.T) {
		before, err := ledger.SumExpenses(ctx, baseFilter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		seedTransaction(t, db, accountID, &groceriesID, "Groceries", jan(20), "80", entity.TransactionTypeExpense, false)

		after, err := ledger.SumExpenses(ctx, baseFilter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !after.Equal(before.Add(decimal.RequireFromString("80"))) {
			t.Errorf("expected %s + 80, got %s", before, after)
		}
	})
}
