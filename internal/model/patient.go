package model

// Vitals holds the most recent readings for a patient. Values are kept as
// display strings because the upstream fixture records them that way.
type Vitals struct {
	BloodPressure string `json:"bp"`
	Temperature   string `json:"temp"`
	Pulse         string `json:"pulse"`
	Weight        string `json:"weight"`
}

// Patient is read-only fixture data; there are no create/update operations.
type Patient struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	AvatarURL      string   `json:"avatarUrl"`
	Vitals         Vitals   `json:"vitals"`
	Allergies      []string `json:"allergies"`
	Medications    []string `json:"medications"`
	LastVisitNotes string   `json:"lastVisitNotes"`
}
