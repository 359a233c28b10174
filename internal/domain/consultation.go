package domain

import "time"

// ConsultationStatus enumerates booking lifecycle states.
type ConsultationStatus string

const (
	ConsultationStatusRequested ConsultationStatus = "requested"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// Consultation is a booking between a student and an approved consultant.
type Consultation struct {
	ID           string
	StudentID    string
	ConsultantID string
	Topic        string
	Notes        string
	ScheduledAt  time.Time
	DurationMin  int
	Status       ConsultationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
