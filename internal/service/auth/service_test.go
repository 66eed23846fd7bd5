package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinician-api/internal/store"
	pkgauth "github.com/jwalitptl/clinician-api/pkg/auth"
	"github.com/jwalitptl/clinician-api/pkg/logger"
)

const (
	testEmail    = "dr.smith@hospital.com"
	testPassword = "password123"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore, *int) {
	t.Helper()

	st := store.NewMemoryStore()
	tokens := pkgauth.NewTokenService("test-secret", 24*time.Hour)

	svc, err := NewService(st, tokens, Config{
		Email:    testEmail,
		Password: testPassword,
	}, logger.Nop())
	require.NoError(t, err)

	sleeps := 0
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		return nil
	}
	return svc, st, &sleeps
}

func TestLogin_Success(t *testing.T) {
	svc, st, sleeps := newTestService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	assert.Equal(t, 1, *sleeps, "login pays the simulated latency")

	assert.Equal(t, "user_123", session.User.ID)
	assert.Equal(t, "Dr. Sarah Smith", session.User.Name)
	assert.Equal(t, testEmail, session.User.Email)
	assert.Equal(t, "Cardiology", session.User.Specialization)
	assert.NotEmpty(t, session.Token)

	stored, err := st.Get(ctx, store.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, session.Token, stored)

	_, err = st.Get(ctx, store.KeyUserData)
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, testEmail, "wrong")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = st.Get(ctx, store.KeyAuthToken)
	assert.ErrorIs(t, err, store.ErrNotFound, "no token may be persisted on failure")
}

func TestLogin_WrongEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	session, err := svc.Login(context.Background(), "someone.else@hospital.com", testPassword)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "DR.SMITH@hospital.com", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	authenticated, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	require.NoError(t, svc.Logout(ctx))

	authenticated, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)

	user, err := svc.CurrentUser(ctx)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogout_IsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Logout(ctx))
	assert.NoError(t, svc.Logout(ctx))
}

func TestCurrentUser_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.User, *user)
}

func TestToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Token(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	session, err := svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Token, token)
}

func TestNewService_AcceptsPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("another-password"), bcrypt.MinCost)
	require.NoError(t, err)

	st := store.NewMemoryStore()
	tokens := pkgauth.NewTokenService("test-secret", time.Hour)
	svc, err := NewService(st, tokens, Config{
		Email:        testEmail,
		PasswordHash: string(hash),
	}, logger.Nop())
	require.NoError(t, err)
	svc.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	_, err = svc.Login(context.Background(), testEmail, "another-password")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewService_RequiresCredential(t *testing.T) {
	st := store.NewMemoryStore()
	tokens := pkgauth.NewTokenService("test-secret", time.Hour)

	_, err := NewService(st, tokens, Config{Email: testEmail}, logger.Nop())
	assert.Error(t, err)
}
