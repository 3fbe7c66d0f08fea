package audit

import (
	"time"

	"recruit/pkg/domain"
)

// Action names what happened to an application.
type Action string

const (
	ActionSubmitted     Action = "application_submitted"
	ActionStatusChanged Action = "application_status_changed"
)

// Event is emitted from domain logic to capture key actions. Stores write it
// in the caller's transaction so the trail matches committed state.
type Event struct {
	ApplicationID domain.ApplicationID
	Action        Action
	ActorID       domain.UserID
	Status        string
	Comment       *string
	RequestID     string
	Timestamp     time.Time
}
