// Package schedule serves appointment and patient data from the bundled
// fixture, fronted by a time-boxed cache envelope in the session store.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinician-api/internal/fixture"
	"github.com/jwalitptl/clinician-api/internal/model"
	"github.com/jwalitptl/clinician-api/internal/store"
	apperrors "github.com/jwalitptl/clinician-api/pkg/errors"
	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

const (
	defaultCacheTTL        = 24 * time.Hour
	defaultLatency         = 500 * time.Millisecond
	patientCacheTTL        = 15 * time.Minute
	patientCacheSweep      = 1 * time.Hour
	syntheticDays          = 6
	completedBias          = 0.7 // rand above this yields "completed"
	secondCloneProbability = 0.5 // rand above this clones two slots
)

// Config carries the tunables of the data service.
type Config struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Latency  time.Duration `mapstructure:"latency"`
}

// envelope wraps the cached daily list with its capture timestamp. It is only
// valid while now-Timestamp stays inside the TTL window.
type envelope struct {
	Data      []model.Appointment `json:"data"`
	Timestamp int64               `json:"timestamp"`
}

// Service is the data service. The clock, randomness source, and latency
// simulation are injectable so tests can pin outcomes.
type Service struct {
	store    store.Store
	schedule *fixture.Schedule
	cfg      Config
	patients *gocache.Cache
	metrics  *metrics.Metrics
	logger   zerolog.Logger

	now   func() time.Time
	rnd   *rand.Rand
	sleep func(context.Context, time.Duration) error
}

func NewService(st store.Store, schedule *fixture.Schedule, cfg Config, m *metrics.Metrics, logger zerolog.Logger) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Latency == 0 {
		cfg.Latency = defaultLatency
	}

	return &Service{
		store:    st,
		schedule: schedule,
		cfg:      cfg,
		patients: gocache.New(patientCacheTTL, patientCacheSweep),
		metrics:  m,
		logger:   logger.With().Str("component", "schedule").Logger(),
		now:      time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:    sleepFor,
	}
}

// TodayAppointments returns the daily appointment list, serving the cached
// envelope while it is fresh and re-deriving from the fixture otherwise. A
// fresh fetch pays the simulated network latency; a cache hit does not.
func (s *Service) TodayAppointments(ctx context.Context) ([]model.Appointment, error) {
	if cached, ok := s.readCache(ctx); ok {
		s.metrics.CacheHits.Inc()
		return cached, nil
	}
	s.metrics.CacheMisses.Inc()

	if err := s.sleep(ctx, s.cfg.Latency); err != nil {
		return nil, err
	}

	appointments := s.materialize()

	env := envelope{Data: appointments, Timestamp: s.now().UnixMilli()}
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to encode cache envelope: %w", err))
	}
	if err := s.store.Set(ctx, store.KeyAppointmentsCache, string(payload)); err != nil {
		// The list is still usable; the next call just pays the fetch again.
		s.logger.Warn().Err(err).Msg("failed to write appointment cache")
	}

	return appointments, nil
}

// Appointments is an alias of TodayAppointments kept for call-site naming.
func (s *Service) Appointments(ctx context.Context) ([]model.Appointment, error) {
	return s.TodayAppointments(ctx)
}

// WeeklySchedule extends the daily list with six synthetic future days. Each
// future day clones one or two of the day's slots under a derived identity
// with a randomly drawn status of waiting or completed. The expansion is
// deliberately non-deterministic; successive calls differ.
func (s *Service) WeeklySchedule(ctx context.Context) ([]model.Appointment, error) {
	daily, err := s.TodayAppointments(ctx)
	if err != nil {
		return nil, err
	}

	week := make([]model.Appointment, len(daily), len(daily)+syntheticDays*2)
	copy(week, daily)

	today := s.now()
	for day := 1; day <= syntheticDays; day++ {
		future := today.AddDate(0, 0, day)

		clones := 1
		if s.rnd.Float64() > secondCloneProbability {
			clones = 2
		}
		if clones > len(daily) {
			clones = len(daily)
		}

		for slot := 0; slot < clones; slot++ {
			apt := daily[slot]
			apt.ID = fmt.Sprintf("%s_day_%d_%d", apt.ID, day, slot)
			apt.Time = time.Date(future.Year(), future.Month(), future.Day(),
				apt.Time.Hour(), apt.Time.Minute(), 0, 0, apt.Time.Location())
			apt.Status = model.AppointmentStatusWaiting
			if s.rnd.Float64() > completedBias {
				apt.Status = model.AppointmentStatusCompleted
			}
			week = append(week, apt)
		}
	}

	return week, nil
}

// PatientDetails scans the daily list for the first appointment owned by the
// given patient. Fixture-scale data makes the linear scan fine; a small
// in-process cache keeps repeat record views off the scan entirely.
func (s *Service) PatientDetails(ctx context.Context, patientID string) (*model.Patient, error) {
	if cached, ok := s.patients.Get(patientID); ok {
		patient := cached.(model.Patient)
		return &patient, nil
	}

	appointments, err := s.TodayAppointments(ctx)
	if err != nil {
		return nil, err
	}

	for _, apt := range appointments {
		if apt.Patient.ID == patientID {
			s.patients.Set(patientID, apt.Patient, gocache.DefaultExpiration)
			patient := apt.Patient
			return &patient, nil
		}
	}

	return nil, apperrors.NotFound("patient", nil)
}

// Stats aggregates the daily list into the dashboard counters.
func (s *Service) Stats(ctx context.Context) (*model.ScheduleStats, error) {
	appointments, err := s.TodayAppointments(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.ScheduleStats{Total: len(appointments)}
	for _, apt := range appointments {
		switch apt.Status {
		case model.AppointmentStatusWaiting:
			stats.Waiting++
		case model.AppointmentStatusCheckedIn:
			stats.CheckedIn++
		case model.AppointmentStatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

// SearchAppointments filters the daily list by patient name and appointment
// status, backing the patient roster screen. Empty query and status "all" (or
// "") match everything.
func (s *Service) SearchAppointments(ctx context.Context, query string, status model.AppointmentStatus) ([]model.Appointment, error) {
	appointments, err := s.TodayAppointments(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]model.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		if query != "" && !strings.Contains(strings.ToLower(apt.Patient.Name), query) {
			continue
		}
		if status != "" && status != "all" && apt.Status != status {
			continue
		}
		matched = append(matched, apt)
	}
	return matched, nil
}

// readCache returns the cached list when the envelope exists, decodes, and is
// still inside the freshness window. Any other outcome is a miss; a corrupt
// or unreadable envelope is logged and refreshed rather than surfaced.
func (s *Service) readCache(ctx context.Context) ([]model.Appointment, bool) {
	raw, err := s.store.Get(ctx, store.KeyAppointmentsCache)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("failed to read appointment cache")
		}
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.logger.Warn().Err(err).Msg("discarding corrupt appointment cache")
		return nil, false
	}

	if s.now().UnixMilli()-env.Timestamp >= s.cfg.CacheTTL.Milliseconds() {
		return nil, false
	}
	return env.Data, true
}

// materialize rebuilds the daily list from the fixture, placing each slot on
// the current day.
func (s *Service) materialize() []model.Appointment {
	today := s.now()
	appointments := make([]model.Appointment, 0, len(s.schedule.Records))
	for _, rec := range s.schedule.Records {
		appointments = append(appointments, model.Appointment{
			ID:      rec.ID,
			Time:    rec.At(today),
			Status:  rec.Status,
			Patient: rec.Patient,
		})
	}
	return appointments
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
