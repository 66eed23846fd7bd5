// Package notification is a permission/enable/disable façade with no real
// scheduling behind it. The enabled check is intentionally randomized per
// call; it mirrors the demo behavior of the app it stands in for.
package notification

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	logger zerolog.Logger

	// rnd is injectable so tests can pin the enabled check.
	rnd func() float64
}

func NewService(logger zerolog.Logger) *Service {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		logger: logger.With().Str("component", "notification").Logger(),
		rnd:    src.Float64,
	}
}

// RequestPermission always grants; there is no device prompt to defer to.
func (s *Service) RequestPermission(ctx context.Context) (bool, error) {
	s.logger.Info().Msg("notification permission requested")
	return true, nil
}

// Enabled is randomized per call. This is a demo artifact, not a setting.
func (s *Service) Enabled(ctx context.Context) (bool, error) {
	return s.rnd() > 0.5, nil
}

func (s *Service) Disable(ctx context.Context) error {
	s.logger.Info().Msg("notifications disabled")
	return nil
}

// ScheduleReminder only logs; no reminder is ever delivered.
func (s *Service) ScheduleReminder(ctx context.Context, appointmentID string, at time.Time) error {
	s.logger.Info().
		Str("appointment_id", appointmentID).
		Time("at", at).
		Msg("scheduled appointment reminder")
	return nil
}
