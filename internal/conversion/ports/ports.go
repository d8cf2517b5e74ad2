// Package ports defines the narrow collaborator interfaces the conversion
// workflow consumes. Each collaborating module is adapted to these; the
// workflow core never imports a concrete service.
package ports

import (
	"context"
	"time"

	"salescrm_backend/internal/conversion/domain"

	"github.com/google/uuid"
)

// CreateAccountInput is the merged account draft handed to the account
// collaborator. Empty strings mean absent.
type CreateAccountInput struct {
	Name         string
	CompanyType  string
	Phone        string
	Email        string
	Website      string
	Street       string
	City         string
	State        string
	ZipCode      string
	Notes        string
	SourceLeadID uuid.UUID
}

type AccountRecord struct {
	ID   uuid.UUID
	Name string
}

type Accounts interface {
	Create(ctx context.Context, input CreateAccountInput) (AccountRecord, error)
	Get(ctx context.Context, id uuid.UUID) (AccountRecord, error)
}

type CreatePropertyInput struct {
	AccountID    uuid.UUID
	Name         string
	BuildingType string
	Street       string
	City         string
	State        string
	ZipCode      string
}

type PropertyRecord struct {
	ID uuid.UUID
}

type Properties interface {
	Create(ctx context.Context, input CreatePropertyInput) (PropertyRecord, error)
}

type CreateContactInput struct {
	AccountID  uuid.UUID
	PropertyID *uuid.UUID
	FirstName  string
	LastName   string
	Title      string
	Email      string
	Phone      string
	IsPrimary  bool
}

type ContactRecord struct {
	ID uuid.UUID
}

type Contacts interface {
	Create(ctx context.Context, input CreateContactInput) (ContactRecord, error)
}

type Leads interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	Patch(ctx context.Context, id uuid.UUID, patch domain.LeadPatch) (domain.Lead, error)
	FindDuplicateAccounts(ctx context.Context, id uuid.UUID) ([]domain.DuplicateCandidate, error)
	Convert(ctx context.Context, id uuid.UUID, linkedAccountID *uuid.UUID) error
}

type CreateTaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     time.Time
	AccountID   uuid.UUID
	PropertyID  *uuid.UUID
	ContactID   *uuid.UUID
	LeadID      uuid.UUID
	AssigneeID  *uuid.UUID
}

type TaskRecord struct {
	ID uuid.UUID
}

type Tasks interface {
	Create(ctx context.Context, input CreateTaskInput) (TaskRecord, error)
}
