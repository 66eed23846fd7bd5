package fixture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinician-api/internal/model"
)

func TestLoad(t *testing.T) {
	schedule, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, schedule.Records)

	seen := make(map[string]bool)
	for _, rec := range schedule.Records {
		assert.NotEmpty(t, rec.ID)
		assert.False(t, seen[rec.ID], "duplicate appointment id %s", rec.ID)
		seen[rec.ID] = true

		assert.Contains(t, []model.AppointmentStatus{
			model.AppointmentStatusWaiting,
			model.AppointmentStatusCheckedIn,
			model.AppointmentStatusCompleted,
		}, rec.Status)

		assert.NotEmpty(t, rec.Patient.ID)
		assert.NotEmpty(t, rec.Patient.Name)
	}
}

func TestRecordAt(t *testing.T) {
	rec := Record{ID: "apt_x", Slot: "14:30", Status: model.AppointmentStatusWaiting}

	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	at := rec.At(day)

	assert.Equal(t, 2025, at.Year())
	assert.Equal(t, time.March, at.Month())
	assert.Equal(t, 10, at.Day())
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
}
