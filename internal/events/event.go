// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"movebroker_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Intake Domain Events
// =============================================================================

// LeadCaptured is published when an intake session completes and the
// MoveIntent has been written to the lead slot. Fields are flattened so
// subscribers do not depend on the lead package.
type LeadCaptured struct {
	BaseEvent
	LeadID       uuid.UUID  `json:"leadId"`
	SessionID    string     `json:"sessionId"`
	Intent       string     `json:"intent"`
	FromZip      string     `json:"fromZip"`
	ToZip        string     `json:"toZip"`
	FromCity     string     `json:"fromCity,omitempty"`
	ToCity       string     `json:"toCity,omitempty"`
	MoveDate     *time.Time `json:"moveDate,omitempty"`
	HomeSize     string     `json:"homeSize"`
	HasVehicle   bool       `json:"hasVehicle"`
	NeedsPacking bool       `json:"needsPacking"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	CapturedAt   time.Time  `json:"capturedAt"`
}

func (e LeadCaptured) EventName() string { return "intake.lead.captured" }
