// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"strings"

	"github.com/google/uuid"
)

// BudgetScope identifies what a budget limit, window or counter applies to:
// either an account as a whole or a single category within an account.
//
// Category identity prefers the stable category UUID. Entries created before
// categories had identifiers are keyed by normalized name; a scope may carry
// both so lookups can probe the canonical key first and fall back to the
// legacy one.
type BudgetScope struct {
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	CategoryName string
}

// OverallScope creates a scope covering the whole account.
func OverallScope(accountID uuid.UUID) BudgetScope {
	return BudgetScope{AccountID: accountID}
}

// CategoryScope creates a scope for a single category within an account.
// categoryID may be uuid.Nil for legacy categories that only have a name.
func CategoryScope(accountID, categoryID uuid.UUID, categoryName string) BudgetScope {
	scope := BudgetScope{
		AccountID:    accountID,
		CategoryName: categoryName,
	}
	if categoryID != uuid.Nil {
		id := categoryID
		scope.CategoryID = &id
	}
	return scope
}

// IsCategory reports whether the scope targets a single category.
func (s BudgetScope) IsCategory() bool {
	return s.CategoryID != nil || s.CategoryName != ""
}

// NormalizedCategoryName returns the legacy lookup form of the category name.
func (s BudgetScope) NormalizedCategoryName() string {
	return strings.ToLower(strings.TrimSpace(s.CategoryName))
}

// Equal reports whether two scopes denote the same budget identity.
// Accounts must match; for category scopes the UUID wins when both sides
// carry one, otherwise the normalized names are compared.
func (s BudgetScope) Equal(other BudgetScope) bool {
	if s.AccountID != other.AccountID {
		return false
	}
	if s.IsCategory() != other.IsCategory() {
		return false
	}
	if !s.IsCategory() {
		return true
	}
	if s.CategoryID != nil && other.CategoryID != nil {
		return *s.CategoryID == *other.CategoryID
	}
	return s.NormalizedCategoryName() == other.NormalizedCategoryName()
}

// keyPart returns the scope's stable fragment used inside store keys.
func (s BudgetScope) keyPart() string {
	if !s.IsCategory() {
		return "overall"
	}
	if s.CategoryID != nil {
		return "cat:" + s.CategoryID.String()
	}
	return "catname:" + s.NormalizedCategoryName()
}
