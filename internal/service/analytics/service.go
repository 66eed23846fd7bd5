// Package analytics is a fire-and-forget event sink: a log line and a counter
// per event, no batching, no retry, no delivery guarantee.
package analytics

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

type Service struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics
	enabled bool
}

func NewService(m *metrics.Metrics, logger zerolog.Logger, enabled bool) *Service {
	return &Service{
		logger:  logger.With().Str("component", "analytics").Logger(),
		metrics: m,
		enabled: enabled,
	}
}

// Track records a single event. Failures are impossible by construction; the
// sink never reports back to the caller.
func (s *Service) Track(event string, properties map[string]interface{}) {
	if !s.enabled {
		return
	}

	s.metrics.AnalyticsEvents.WithLabelValues(event).Inc()
	s.logger.Debug().
		Str("event_id", uuid.New().String()).
		Str("event", event).
		Fields(map[string]interface{}{"properties": properties}).
		Msg("analytics event")
}

// TrackScreenView is the screen_view convenience wrapper used by the UI.
func (s *Service) TrackScreenView(screen string, properties map[string]interface{}) {
	merged := map[string]interface{}{"screen": screen}
	for k, v := range properties {
		merged[k] = v
	}
	s.Track("screen_view", merged)
}

// SetUserProperties logs user-scoped properties; nothing is stored.
func (s *Service) SetUserProperties(properties map[string]interface{}) {
	if !s.enabled {
		return
	}
	s.logger.Debug().
		Fields(map[string]interface{}{"properties": properties}).
		Msg("analytics user properties")
}
