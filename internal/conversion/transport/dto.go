package transport

import (
	"github.com/google/uuid"
)

// Request DTOs

type StartWorkflowRequest struct {
	LeadID uuid.UUID `json:"leadId" validate:"required"`
}

// LeadEditPayload carries validation-step edits applied to the lead upstream.
type LeadEditPayload struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Website *string `json:"website,omitempty" validate:"omitempty,max=255"`
	Street  *string `json:"street,omitempty" validate:"omitempty,max=255"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode *string `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

type PathPayload struct {
	Path              string     `json:"path" validate:"required,oneof=NewProspect ExistingAccount NewProperty"`
	SelectedAccountID *uuid.UUID `json:"selectedAccountId,omitempty"`
}

type AccountDraftPayload struct {
	Name        string `json:"name" validate:"max=200"`
	CompanyType string `json:"companyType" validate:"omitempty,oneof=Retail Restaurant Hospitality Healthcare Office Industrial Other"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Website     string `json:"website,omitempty" validate:"omitempty,max=255"`
	Street      string `json:"street,omitempty" validate:"omitempty,max=255"`
	City        string `json:"city,omitempty" validate:"omitempty,max=100"`
	State       string `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode     string `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type PropertyDraftPayload struct {
	Name         string `json:"name" validate:"max=200"`
	BuildingType string `json:"buildingType,omitempty" validate:"omitempty,oneof=Office Warehouse Retail Restaurant Mixed_Use Other"`
	Street       string `json:"street,omitempty" validate:"omitempty,max=255"`
	City         string `json:"city,omitempty" validate:"omitempty,max=100"`
	State        string `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode      string `json:"zipCode,omitempty" validate:"omitempty,max=20"`
}

type ContactDraftPayload struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Title     string `json:"title,omitempty" validate:"omitempty,max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

type TaskTemplatePayload struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    string `json:"category,omitempty" validate:"omitempty,oneof=Call Email Meeting Follow_Up Other"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=Low Normal High Urgent"`
	OffsetDays  int    `json:"offsetDays" validate:"min=0,max=365"`
}

// AdvanceWorkflowRequest carries the step-local payload. Only the section
// matching the current step is consulted.
type AdvanceWorkflowRequest struct {
	Lead     *LeadEditPayload      `json:"lead,omitempty"`
	Path     *PathPayload          `json:"path,omitempty"`
	Account  *AccountDraftPayload  `json:"account,omitempty"`
	Property *PropertyDraftPayload `json:"property,omitempty"`
	Contacts []ContactDraftPayload `json:"contacts,omitempty" validate:"omitempty,dive"`
	Tasks    []TaskTemplatePayload `json:"tasks,omitempty" validate:"omitempty,dive"`
}

// Response DTOs

type DuplicateCandidateView struct {
	AccountID   uuid.UUID `json:"accountId"`
	Name        string    `json:"name"`
	CompanyType string    `json:"companyType"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Score       *float64  `json:"score,omitempty"`
	Confidence  string    `json:"confidence"`
}

type SelectedAccountView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type LeadView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CompanyType string    `json:"companyType"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Website     string    `json:"website,omitempty"`
	Street      string    `json:"street,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	ZipCode     string    `json:"zipCode,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

type ContactDraftView struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

type TaskTemplateView struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	OffsetDays  int    `json:"offsetDays"`
}

type ResultView struct {
	AccountID      uuid.UUID  `json:"accountId"`
	PropertyID     *uuid.UUID `json:"propertyId,omitempty"`
	ContactsCount  int        `json:"contactsCount"`
	TasksCount     int        `json:"tasksCount"`
	ConversionType string     `json:"conversionType"`
	Message        string     `json:"message"`
}

// WorkflowResponse presents the position and accumulated data of one run.
type WorkflowResponse struct {
	ID              uuid.UUID                `json:"id"`
	LeadID          uuid.UUID                `json:"leadId"`
	CurrentStep     string                   `json:"currentStep"`
	Lead            LeadView                 `json:"lead"`
	Path            *string                  `json:"path,omitempty"`
	SelectedAccount *SelectedAccountView     `json:"selectedAccount,omitempty"`
	Candidates      []DuplicateCandidateView `json:"candidates,omitempty"`
	Contacts        []ContactDraftView       `json:"contacts,omitempty"`
	Tasks           []TaskTemplateView       `json:"tasks,omitempty"`
	Result          *ResultView              `json:"result,omitempty"`
}
