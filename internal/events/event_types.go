package events

import (
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered     EventType = "account_registered"
	EventAccountApproved       EventType = "account_approved"
	EventAccountRejected       EventType = "account_rejected"
	EventConsultationBooked    EventType = "consultation_booked"
	EventConsultationConfirmed EventType = "consultation_confirmed"
	EventConsultationCancelled EventType = "consultation_cancelled"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	ProfileID string      `json:"profile_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Email  string               `json:"email"`
	Role   domain.Role          `json:"role"`
	Status domain.AccountStatus `json:"status"`
}

// AccountApprovedPayload payload.
type AccountApprovedPayload struct {
	Role       domain.Role `json:"role"`
	ApprovedBy string      `json:"approved_by"`
}

// AccountRejectedPayload payload.
type AccountRejectedPayload struct {
	Role       domain.Role `json:"role"`
	RejectedBy string      `json:"rejected_by"`
	Reason     string      `json:"reason,omitempty"`
}

// ConsultationBookedPayload payload.
type ConsultationBookedPayload struct {
	StudentID    string    `json:"student_id"`
	ConsultantID string    `json:"consultant_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Topic        string    `json:"topic"`
}

// ConsultationStatusPayload payload for confirm/cancel events.
type ConsultationStatusPayload struct {
	OldStatus domain.ConsultationStatus `json:"old_status"`
	NewStatus domain.ConsultationStatus `json:"new_status"`
}
