package valueobject

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PeriodKeyLayout is the time layout a window end date is reduced to when a
// per-period idempotency key is needed.
const PeriodKeyLayout = "2006-01"

// PeriodKeyOf derives the stable per-period key from a window's end date.
func PeriodKeyOf(end time.Time) string {
	return end.Format(PeriodKeyLayout)
}

// StoreKey is the structured identity of one persisted value. It replaces the
// historical flat string keys while keeping their logical namespace: String()
// must stay byte-stable so previously persisted data remains addressable.
type StoreKey struct {
	parts []string
}

func newStoreKey(accountID uuid.UUID, parts ...string) StoreKey {
	return StoreKey{parts: append([]string{"acct", accountID.String()}, parts...)}
}

// String renders the key in the legacy flat namespace.
func (k StoreKey) String() string {
	return strings.Join(k.parts, ":")
}

// LimitKey addresses the configured limit for a scope. Category scopes use
// the canonical id-backed key; see LegacyLimitKey for the name-backed one.
func LimitKey(scope BudgetScope) StoreKey {
	return newStoreKey(scope.AccountID, "limit", scope.keyPart())
}

// LegacyLimitKey addresses the pre-identifier name-keyed limit entry for a
// category scope. Returns ok=false when the scope has no category name.
func LegacyLimitKey(scope BudgetScope) (StoreKey, bool) {
	if !scope.IsCategory() || scope.NormalizedCategoryName() == "" {
		return StoreKey{}, false
	}
	return newStoreKey(scope.AccountID, "limit", "catname:"+scope.NormalizedCategoryName()), true
}

// WindowStartKey addresses the persisted start bound of a scope's window.
func WindowStartKey(scope BudgetScope, kind PeriodKind) StoreKey {
	return newStoreKey(scope.AccountID, "window", scope.keyPart(), string(kind), "start")
}

// WindowEndKey addresses the persisted end bound of a scope's window.
func WindowEndKey(scope BudgetScope, kind PeriodKind) StoreKey {
	return newStoreKey(scope.AccountID, "window", scope.keyPart(), string(kind), "end")
}

// NotificationFlagKey addresses the one-shot marker for a threshold having
// been announced in a given period.
func NotificationFlagKey(scope BudgetScope, periodKey string, threshold int) StoreKey {
	return newStoreKey(scope.AccountID, "notif", scope.keyPart(), periodKey, strconv.Itoa(threshold))
}

// CompletionFlagKey addresses the marker guarding the completion counter
// against double increments for an already-judged period.
func CompletionFlagKey(scope BudgetScope, kind PeriodKind, periodKey string) StoreKey {
	return newStoreKey(scope.AccountID, "done", scope.keyPart(), string(kind), periodKey)
}

// CounterKind selects one of the two per-account completion counters.
type CounterKind string

const (
	CounterOverall  CounterKind = "overall"
	CounterCategory CounterKind = "category"
)

// CounterKey addresses a per-account completion counter.
func CounterKey(accountID uuid.UUID, kind CounterKind) StoreKey {
	return newStoreKey(accountID, "completions", string(kind))
}
