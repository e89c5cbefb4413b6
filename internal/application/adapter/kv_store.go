// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// KeyValueStore is the persistent store backing budget configuration and
// idempotency flags. Missing values are reported through the ok result, never
// as errors; errors are reserved for persistence I/O failures.
type KeyValueStore interface {
	// GetDecimal retrieves a decimal value by key.
	GetDecimal(ctx context.Context, key valueobject.StoreKey) (value decimal.Decimal, ok bool, err error)

	// SetDecimal stores a decimal value under the key.
	SetDecimal(ctx context.Context, key valueobject.StoreKey, value decimal.Decimal) error

	// GetTime retrieves a date value by key.
	GetTime(ctx context.Context, key valueobject.StoreKey) (value time.Time, ok bool, err error)

	// SetTime stores a date value under the key.
	SetTime(ctx context.Context, key valueobject.StoreKey, value time.Time) error

	// GetBool retrieves a boolean flag by key. Absent flags read as false.
	GetBool(ctx context.Context, key valueobject.StoreKey) (value bool, err error)

	// SetBool stores a boolean flag under the key.
	SetBool(ctx context.Context, key valueobject.StoreKey, value bool) error

	// GetInt retrieves an integer counter by key. Absent counters read as zero.
	GetInt(ctx context.Context, key valueobject.StoreKey) (value int64, err error)

	// SetInt stores an integer counter under the key.
	SetInt(ctx context.Context, key valueobject.StoreKey, value int64) error

	// Delete removes the value under the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key valueobject.StoreKey) error
}
