// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"salescrm_backend/platform/events"

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
var (
	NewBaseEvent = events.NewBaseEvent
)

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead is created.
type LeadCreated struct {
	BaseEvent
	LeadID      uuid.UUID `json:"leadId"`
	Name        string    `json:"name"`
	CompanyType string    `json:"companyType"`
	Source      string    `json:"source,omitempty"`
}

func (e LeadCreated) EventName() string { return "leads.created" }

// LeadConverted is published when the conversion workflow commit succeeds.
type LeadConverted struct {
	BaseEvent
	LeadID         uuid.UUID  `json:"leadId"`
	AccountID      uuid.UUID  `json:"accountId"`
	PropertyID     *uuid.UUID `json:"propertyId,omitempty"`
	ContactsCount  int        `json:"contactsCount"`
	TasksCount     int        `json:"tasksCount"`
	ConversionType string     `json:"conversionType"`
	ConvertedByID  uuid.UUID  `json:"convertedById"`
}

func (e LeadConverted) EventName() string { return "leads.converted" }

// =============================================================================
// Tasks Domain Events
// =============================================================================

// TaskCreated is published when a follow-up task is created.
type TaskCreated struct {
	BaseEvent
	TaskID     uuid.UUID  `json:"taskId"`
	Title      string     `json:"title"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	AccountID  *uuid.UUID `json:"accountId,omitempty"`
	AssigneeID *uuid.UUID `json:"assigneeId,omitempty"`
}

func (e TaskCreated) EventName() string { return "tasks.created" }
