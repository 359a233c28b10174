package dto

import (
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ConsultationBookRequest payload for new bookings.
type ConsultationBookRequest struct {
	ConsultantID string    `json:"consultant_id"`
	Topic        string    `json:"topic"`
	Notes        string    `json:"notes"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	DurationMin  int       `json:"duration_min"`
}

// ConsultationResponse wire form of a booking.
type ConsultationResponse struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	ConsultantID string    `json:"consultant_id"`
	Topic        string    `json:"topic"`
	Notes        string    `json:"notes,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewConsultationResponse maps a booking to its wire form.
func NewConsultationResponse(c *domain.Consultation) *ConsultationResponse {
	return &ConsultationResponse{
		ID:           c.ID,
		StudentID:    c.StudentID,
		ConsultantID: c.ConsultantID,
		Topic:        c.Topic,
		Notes:        c.Notes,
		ScheduledAt:  c.ScheduledAt,
		DurationMin:  c.DurationMin,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// NewConsultationResponses maps a slice.
func NewConsultationResponses(consultations []*domain.Consultation) []*ConsultationResponse {
	out := make([]*ConsultationResponse, 0, len(consultations))
	for _, c := range consultations {
		out = append(out, NewConsultationResponse(c))
	}
	return out
}
