package store

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

// InstrumentedStore decorates a Store with prometheus operation counters.
// A Get miss is counted as "miss", not as a failure.
type InstrumentedStore struct {
	inner   Store
	metrics *metrics.Metrics
}

func NewInstrumentedStore(inner Store, m *metrics.Metrics) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, metrics: m}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.inner.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.StoreOperations.WithLabelValues("get", "success").Inc()
	case errors.Is(err, ErrNotFound):
		s.metrics.StoreOperations.WithLabelValues("get", "miss").Inc()
	default:
		s.metrics.StoreOperations.WithLabelValues("get", "error").Inc()
	}
	return value, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key, value string) error {
	err := s.inner.Set(ctx, key, value)
	s.metrics.StoreOperations.WithLabelValues("set", status(err)).Inc()
	return err
}

func (s *InstrumentedStore) Remove(ctx context.Context, keys ...string) error {
	err := s.inner.Remove(ctx, keys...)
	s.metrics.StoreOperations.WithLabelValues("remove", status(err)).Inc()
	return err
}

func (s *InstrumentedStore) Clear(ctx context.Context) error {
	err := s.inner.Clear(ctx)
	s.metrics.StoreOperations.WithLabelValues("clear", status(err)).Inc()
	return err
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
