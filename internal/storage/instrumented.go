package storage

import (
	"time"

	"bookflow/pkg/metrics"
)

// instrumentedStore records prometheus counters and durations for every
// store operation.
type instrumentedStore struct {
	next Store
}

// WithMetrics wraps a store with operation metrics.
func WithMetrics(next Store) Store {
	return &instrumentedStore{next: next}
}

func (s *instrumentedStore) Get(key string) ([]byte, bool) {
	start := time.Now()
	value, ok := s.next.Get(key)
	metrics.RecordStoreOperation("get", key, time.Since(start))
	return value, ok
}

func (s *instrumentedStore) Set(key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(key, value)
	metrics.RecordStoreOperation("set", key, time.Since(start))
	return err
}

func (s *instrumentedStore) Remove(key string) error {
	start := time.Now()
	err := s.next.Remove(key)
	metrics.RecordStoreOperation("remove", key, time.Since(start))
	return err
}

func (s *instrumentedStore) Ping() error { return s.next.Ping() }

func (s *instrumentedStore) Close() error { return s.next.Close() }
