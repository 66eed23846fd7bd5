// Package fixture loads the bundled dataset that stands in for a real
// backend. The data is embedded at build time and treated as read-only.
package fixture

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinician-api/internal/model"
)

//go:embed data.json
var dataFS embed.FS

// Record is one scheduled appointment in the fixture. The slot is a 24-hour
// wall-clock time; callers materialize it onto a concrete date.
type Record struct {
	ID      string                  `json:"id" validate:"required"`
	Slot    string                  `json:"time" validate:"required"`
	Status  model.AppointmentStatus `json:"status" validate:"required,oneof=waiting checked-in completed"`
	Patient model.Patient           `json:"patient" validate:"required"`
}

// Schedule is the full fixture dataset.
type Schedule struct {
	Records []Record `json:"schedule" validate:"required,dive"`
}

// Load parses and validates the embedded dataset. It is called once at
// startup; a failure here is fatal to the process.
func Load() (*Schedule, error) {
	raw, err := dataFS.ReadFile("data.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var schedule Schedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&schedule); err != nil {
		return nil, fmt.Errorf("invalid fixture data: %w", err)
	}

	for _, rec := range schedule.Records {
		if _, err := time.Parse("15:04", rec.Slot); err != nil {
			return nil, fmt.Errorf("invalid slot %q for %s: %w", rec.Slot, rec.ID, err)
		}
	}

	return &schedule, nil
}

// At places the record's wall-clock slot on the given day.
func (r Record) At(day time.Time) time.Time {
	slot, _ := time.Parse("15:04", r.Slot) // validated in Load
	return time.Date(day.Year(), day.Month(), day.Day(),
		slot.Hour(), slot.Minute(), 0, 0, day.Location())
}
