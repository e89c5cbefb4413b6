package budget

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
	"github.com/budget-guard/backend/internal/domain/valueobject"
)

// memStore is an in-memory KeyValueStore for use case tests.
type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) GetDecimal(_ context.Context, key valueobject.StoreKey) (decimal.Decimal, bool, error) {
	raw, ok := s.values[key.String()]
	if !ok {
		return decimal.Zero, false, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, err
	}
	return value, true, nil
}

func (s *memStore) SetDecimal(_ context.Context, key valueobject.StoreKey, value decimal.Decimal) error {
	s.values[key.String()] = value.String()
	return nil
}

func (s *memStore) GetTime(_ context.Context, key valueobject.StoreKey) (time.Time, bool, error) {
	raw, ok := s.values[key.String()]
	if !ok {
		return time.Time{}, false, nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return value, true, nil
}

func (s *memStore) SetTime(_ context.Context, key valueobject.StoreKey, value time.Time) error {
	s.values[key.String()] = value.Format("2006-01-02")
	return nil
}

func (s *memStore) GetBool(_ context.Context, key valueobject.StoreKey) (bool, error) {
	return s.values[key.String()] == "1", nil
}

func (s *memStore) SetBool(_ context.Context, key valueobject.StoreKey, value bool) error {
	raw := "0"
	if value {
		raw = "1"
	}
	s.values[key.String()] = raw
	return nil
}

func (s *memStore) GetInt(_ context.Context, key valueobject.StoreKey) (int64, error) {
	raw, ok := s.values[key.String()]
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (s *memStore) SetInt(_ context.Context, key valueobject.StoreKey, value int64) error {
	s.values[key.String()] = strconv.FormatInt(value, 10)
	return nil
}

func (s *memStore) Delete(_ context.Context, key valueobject.StoreKey) error {
	delete(s.values, key.String())
	return nil
}

func (s *memStore) has(key valueobject.StoreKey) bool {
	_, ok := s.values[key.String()]
	return ok
}

// failingStore fails every operation with a fixed error.
type failingStore struct {
	err error
}

func (s *failingStore) GetDecimal(_ context.Context, _ valueobject.StoreKey) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, s.err
}

func (s *failingStore) SetDecimal(_ context.Context, _ valueobject.StoreKey, _ decimal.Decimal) error {
	return s.err
}

func (s *failingStore) GetTime(_ context.Context, _ valueobject.StoreKey) (time.Time, bool, error) {
	return time.Time{}, false, s.err
}

func (s *failingStore) SetTime(_ context.Context, _ valueobject.StoreKey, _ time.Time) error {
	return s.err
}

func (s *failingStore) GetBool(_ context.Context, _ valueobject.StoreKey) (bool, error) {
	return false, s.err
}

func (s *failingStore) SetBool(_ context.Context, _ valueobject.StoreKey, _ bool) error {
	return s.err
}

func (s *failingStore) GetInt(_ context.Context, _ valueobject.StoreKey) (int64, error) {
	return 0, s.err
}

func (s *failingStore) SetInt(_ context.Context, _ valueobject.StoreKey, _ int64) error {
	return s.err
}

func (s *failingStore) Delete(_ context.Context, _ valueobject.StoreKey) error {
	return s.err
}

// failingLedger fails every query with a fixed error.
type failingLedger struct {
	err error
}

func (l *failingLedger) SumExpenses(_ context.Context, _ adapter.LedgerFilter) (decimal.Decimal, error) {
	return decimal.Zero, l.err
}

// stubClock is a fixed, settable clock.
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

// stubLedger returns a canned total and records the last filter it saw.
type stubLedger struct {
	total      decimal.Decimal
	lastFilter adapter.LedgerFilter
}

func (l *stubLedger) SumExpenses(_ context.Context, filter adapter.LedgerFilter) (decimal.Decimal, error) {
	l.lastFilter = filter
	return l.total, nil
}

// recordingDispatcher captures dispatched notifications.
type recordingDispatcher struct {
	sent []entity.ThresholdNotification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, notification entity.ThresholdNotification) error {
	d.sent = append(d.sent, notification)
	return nil
}
