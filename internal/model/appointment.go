package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusWaiting   AppointmentStatus = "waiting"
	AppointmentStatusCheckedIn AppointmentStatus = "checked-in"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment embeds its patient as a value; appointments are reconstructed
// fresh on every fetch and never updated in place.
type Appointment struct {
	ID      string            `json:"id" validate:"required"`
	Time    time.Time         `json:"time"`
	Status  AppointmentStatus `json:"status" validate:"required,oneof=waiting checked-in completed"`
	Patient Patient           `json:"patient"`
}

// ScheduleStats are the dashboard counters derived from the daily list.
type ScheduleStats struct {
	Total     int `json:"total"`
	Waiting   int `json:"waiting"`
	CheckedIn int `json:"checked_in"`
	Completed int `json:"completed"`
}
