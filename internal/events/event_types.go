package events

import (
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventCompanyCreated       EventType = "company_created"
	EventCompanyStatusChanged EventType = "company_status_changed"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// CompanyCreatedPayload payload.
type CompanyCreatedPayload struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	JobRole   string `json:"job_role"`
}

// CompanyStatusChangedPayload payload.
type CompanyStatusChangedPayload struct {
	CompanyID string             `json:"company_id"`
	OldStatus domain.DriveStatus `json:"old_status"`
	NewStatus domain.DriveStatus `json:"new_status"`
}
