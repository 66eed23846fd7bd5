// Package auth validates the demo credential pair and manages the persisted
// session: an opaque token plus the cached clinician profile.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinician-api/internal/model"
	"github.com/jwalitptl/clinician-api/internal/store"
	pkgauth "github.com/jwalitptl/clinician-api/pkg/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no active session")
)

const (
	defaultLatency = 1 * time.Second
	bcryptCost     = 10
)

// Config carries the demo credential pair and token settings. Password is
// hashed once at construction; PasswordHash takes precedence when set.
type Config struct {
	Email        string        `mapstructure:"email"`
	Password     string        `mapstructure:"password"`
	PasswordHash string        `mapstructure:"password_hash"`
	Latency      time.Duration `mapstructure:"latency"`
}

// Service is a two-state machine, anonymous or authenticated, with the state
// held entirely in the session store.
type Service struct {
	store        store.Store
	tokens       *pkgauth.TokenService
	email        string
	passwordHash []byte
	latency      time.Duration
	profile      model.User
	logger       zerolog.Logger

	sleep func(context.Context, time.Duration) error
}

func NewService(st store.Store, tokens *pkgauth.TokenService, cfg Config, logger zerolog.Logger) (*Service, error) {
	if cfg.Email == "" {
		cfg.Email = "dr.smith@hospital.com"
	}
	if cfg.Latency == 0 {
		cfg.Latency = defaultLatency
	}

	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, fmt.Errorf("auth: password or password_hash is required")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("auth: failed to hash password: %w", err)
		}
		hash = generated
	}

	return &Service{
		store:        st,
		tokens:       tokens,
		email:        cfg.Email,
		passwordHash: hash,
		latency:      cfg.Latency,
		profile: model.User{
			ID:             "user_123",
			Name:           "Dr. Sarah Smith",
			Email:          cfg.Email,
			Specialization: "Cardiology",
		},
		logger: logger.With().Str("component", "auth").Logger(),
		sleep:  sleepFor,
	}, nil
}

// Login transitions anonymous to authenticated when the credentials match the
// configured pair exactly. The token and profile are persisted as two
// independent writes; a crash between them is an accepted gap.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if err := s.sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	if email != s.email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(&s.profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.store.Set(ctx, store.KeyAuthToken, token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	profile, err := json.Marshal(s.profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user profile: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyUserData, string(profile)); err != nil {
		return nil, fmt.Errorf("failed to persist user profile: %w", err)
	}

	s.logger.Info().Str("user_id", s.profile.ID).Msg("login succeeded")
	return &model.Session{Token: token, User: s.profile}, nil
}

// Logout removes both session keys. Calling it while anonymous is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.KeyAuthToken, store.KeyUserData); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info().Msg("session cleared")
	return nil
}

// IsAuthenticated reports whether a token is present in the store. This is a
// presence check only; no expiry or signature validation happens here.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	if _, err := s.store.Get(ctx, store.KeyAuthToken); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Token returns the persisted session token, or ErrNoSession.
func (s *Service) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, store.KeyAuthToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNoSession
		}
		return "", err
	}
	return token, nil
}

// CurrentUser returns the persisted profile, or ErrNoSession when none is
// stored.
func (s *Service) CurrentUser(ctx context.Context) (*model.User, error) {
	raw, err := s.store.Get(ctx, store.KeyUserData)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}
	return &user, nil
}

func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
