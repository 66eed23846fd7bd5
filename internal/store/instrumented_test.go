package store

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

func TestInstrumentedStore_CountsOperations(t *testing.T) {
	m := metrics.New("test")
	s := NewInstrumentedStore(NewMemoryStore(), m)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, "token-1"))

	_, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Remove(ctx, KeyAuthToken))
	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("set", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("get", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("get", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("remove", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("clear", "success")))
}
