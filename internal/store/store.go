// Package store provides the durable key-value session store shared by the
// auth and schedule services. It is the only persisted state in the system.
package store

import (
	"context"
	"errors"
)

// Persisted keys. Writes to different keys are independent calls with no
// cross-key atomicity.
const (
	KeyAuthToken         = "auth_token"
	KeyUserData          = "user_data"
	KeyAppointmentsCache = "appointments_cache"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("store: key not found")

// Store is the session store contract. All operations may suspend on I/O and
// are expected to be durable across process restarts (the in-memory
// implementation used in tests being the deliberate exception).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
