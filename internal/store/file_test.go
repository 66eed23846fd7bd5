package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = s.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyAuthToken, "token-1"))

	value, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "token-1", value)
}

func TestFileStore_DurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyAuthToken, "token-1"))
	require.NoError(t, s.Set(ctx, KeyUserData, `{"id":"user_123"}`))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	token, err := reopened.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	user, err := reopened.Get(ctx, KeyUserData)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"user_123"}`, user)
}

func TestFileStore_RemoveMultipleKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyAuthToken, "token-1"))
	require.NoError(t, s.Set(ctx, KeyUserData, "user"))
	require.NoError(t, s.Set(ctx, KeyAppointmentsCache, "cache"))

	require.NoError(t, s.Remove(ctx, KeyAuthToken, KeyUserData))

	_, err = s.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, KeyUserData)
	assert.ErrorIs(t, err, ErrNotFound)

	// Untouched key survives.
	cache, err := s.Get(ctx, KeyAppointmentsCache)
	require.NoError(t, err)
	assert.Equal(t, "cache", cache)

	// Removing absent keys is a no-op.
	assert.NoError(t, s.Remove(ctx, KeyAuthToken))
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyAuthToken, "token-1"))
	require.NoError(t, s.Clear(ctx))

	_, err = s.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyAuthToken, "token-1"))
	value, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "token-1", value)

	require.NoError(t, s.Remove(ctx, KeyAuthToken))
	_, err = s.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)
}
