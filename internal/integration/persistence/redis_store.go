// Package persistence implements adapter interfaces for storage backends.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// storedTimeLayout is the wire format for persisted dates. Day precision is
// enough for window bounds.
const storedTimeLayout = "2006-01-02"

// redisStore implements the adapter.KeyValueStore interface over Redis.
// Keys carry their own per-account namespace (see valueobject.StoreKey), so
// the store itself adds no prefix.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed key-value store.
func NewRedisStore(client *redis.Client) adapter.KeyValueStore {
	return &redisStore{
		client: client,
	}
}

// GetDecimal retrieves a decimal value by key.
func (s *redisStore) GetDecimal(ctx context.Context, key valueobject.StoreKey) (decimal.Decimal, bool, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return decimal.Zero, false, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt decimal at %s: %w", key, err)
	}
	return value, true, nil
}

// SetDecimal stores a decimal value under the key.
func (s *redisStore) SetDecimal(ctx context.Context, key valueobject.StoreKey, value decimal.Decimal) error {
	return s.set(ctx, key, value.String())
}

// GetTime retrieves a date value by key.
func (s *redisStore) GetTime(ctx context.Context, key valueobject.StoreKey) (time.Time, bool, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	value, err := time.Parse(storedTimeLayout, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupt date at %s: %w", key, err)
	}
	return value, true, nil
}

// SetTime stores a date value under the key.
func (s *redisStore) SetTime(ctx context.Context, key valueobject.StoreKey, value time.Time) error {
	return s.set(ctx, key, value.Format(storedTimeLayout))
}

// GetBool retrieves a boolean flag by key. Absent flags read as false.
func (s *redisStore) GetBool(ctx context.Context, key valueobject.StoreKey) (bool, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return raw == "1", nil
}

// SetBool stores a boolean flag under the key.
func (s *redisStore) SetBool(ctx context.Context, key valueobject.StoreKey, value bool) error {
	raw := "0"
	if value {
		raw = "1"
	}
	return s.set(ctx, key, raw)
}

// GetInt retrieves an integer counter by key. Absent counters read as zero.
func (s *redisStore) GetInt(ctx context.Context, key valueobject.StoreKey) (int64, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt integer at %s: %w", key, err)
	}
	return value, nil
}

// SetInt stores an integer counter under the key.
func (s *redisStore) SetInt(ctx context.Context, key valueobject.StoreKey, value int64) error {
	return s.set(ctx, key, strconv.FormatInt(value, 10))
}

// Delete removes the value under the key. Deleting an absent key is a no-op.
func (s *redisStore) Delete(ctx context.Context, key valueobject.StoreKey) error {
	if err := s.client.Del(ctx, key.String()).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) get(ctx context.Context, key valueobject.StoreKey) (string, bool, error) {
	raw, err := s.client.Get(ctx, key.String()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, true, nil
}

func (s *redisStore) set(ctx context.Context, key valueobject.StoreKey, raw string) error {
	if err := s.client.Set(ctx, key.String(), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
