// Package adapters bridges the conversion workflow's collaborator ports to
// the concrete CRUD services.
package adapters

import (
	"context"

	accountsvc "salescrm_backend/internal/accounts/service"
	accounttransport "salescrm_backend/internal/accounts/transport"
	contactsvc "salescrm_backend/internal/contacts/service"
	contacttransport "salescrm_backend/internal/contacts/transport"
	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/internal/conversion/ports"
	leadsvc "salescrm_backend/internal/leads/service"
	leadtransport "salescrm_backend/internal/leads/transport"
	propertysvc "salescrm_backend/internal/properties/service"
	propertytransport "salescrm_backend/internal/properties/transport"
	tasksvc "salescrm_backend/internal/tasks/service"
	tasktransport "salescrm_backend/internal/tasks/transport"

	"github.com/google/uuid"
)

// Accounts adapts the accounts service.
type Accounts struct {
	svc *accountsvc.Service
}

func NewAccounts(svc *accountsvc.Service) *Accounts {
	return &Accounts{svc: svc}
}

func (a *Accounts) Create(ctx context.Context, input ports.CreateAccountInput) (ports.AccountRecord, error) {
	leadID := input.SourceLeadID
	resp, err := a.svc.Create(ctx, accounttransport.CreateAccountRequest{
		Name:         input.Name,
		CompanyType:  accounttransport.CompanyType(input.CompanyType),
		Phone:        input.Phone,
		Email:        input.Email,
		Website:      input.Website,
		Street:       input.Street,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Notes:        input.Notes,
		SourceLeadID: &leadID,
	})
	if err != nil {
		return ports.AccountRecord{}, err
	}
	return ports.AccountRecord{ID: resp.ID, Name: resp.Name}, nil
}

func (a *Accounts) Get(ctx context.Context, id uuid.UUID) (ports.AccountRecord, error) {
	resp, err := a.svc.GetByID(ctx, id)
	if err != nil {
		return ports.AccountRecord{}, err
	}
	return ports.AccountRecord{ID: resp.ID, Name: resp.Name}, nil
}

// Properties adapts the properties service.
type Properties struct {
	svc *propertysvc.Service
}

func NewProperties(svc *propertysvc.Service) *Properties {
	return &Properties{svc: svc}
}

func (p *Properties) Create(ctx context.Context, input ports.CreatePropertyInput) (ports.PropertyRecord, error) {
	resp, err := p.svc.Create(ctx, propertytransport.CreatePropertyRequest{
		AccountID:    input.AccountID,
		Name:         input.Name,
		BuildingType: propertytransport.BuildingType(input.BuildingType),
		Street:       input.Street,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
	})
	if err != nil {
		return ports.PropertyRecord{}, err
	}
	return ports.PropertyRecord{ID: resp.ID}, nil
}

// Contacts adapts the contacts service.
type Contacts struct {
	svc *contactsvc.Service
}

func NewContacts(svc *contactsvc.Service) *Contacts {
	return &Contacts{svc: svc}
}

func (c *Contacts) Create(ctx context.Context, input ports.CreateContactInput) (ports.ContactRecord, error) {
	resp, err := c.svc.Create(ctx, contacttransport.CreateContactRequest{
		AccountID:  input.AccountID,
		PropertyID: input.PropertyID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Title:      input.Title,
		Email:      input.Email,
		Phone:      input.Phone,
		IsPrimary:  input.IsPrimary,
	})
	if err != nil {
		return ports.ContactRecord{}, err
	}
	return ports.ContactRecord{ID: resp.ID}, nil
}

// Leads adapts the leads service.
type Leads struct {
	svc *leadsvc.Service
}

func NewLeads(svc *leadsvc.Service) *Leads {
	return &Leads{svc: svc}
}

func (l *Leads) Get(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	resp, err := l.svc.GetByID(ctx, id)
	if err != nil {
		return domain.Lead{}, err
	}
	return toDomainLead(resp), nil
}

func (l *Leads) Patch(ctx context.Context, id uuid.UUID, patch domain.LeadPatch) (domain.Lead, error) {
	resp, err := l.svc.Update(ctx, id, leadtransport.UpdateLeadRequest{
		Name:    patch.Name,
		Phone:   patch.Phone,
		Email:   patch.Email,
		Website: patch.Website,
		Street:  patch.Street,
		City:    patch.City,
		State:   patch.State,
		ZipCode: patch.ZipCode,
		Notes:   patch.Notes,
	})
	if err != nil {
		return domain.Lead{}, err
	}
	return toDomainLead(resp), nil
}

func (l *Leads) FindDuplicateAccounts(ctx context.Context, id uuid.UUID) ([]domain.DuplicateCandidate, error) {
	resp, err := l.svc.FindDuplicateAccounts(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.DuplicateCandidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		candidate := domain.DuplicateCandidate{
			AccountID:   item.AccountID,
			Name:        item.Name,
			CompanyType: item.CompanyType,
			Score:       item.Score,
		}
		if item.City != nil {
			candidate.City = *item.City
		}
		if item.State != nil {
			candidate.State = *item.State
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (l *Leads) Convert(ctx context.Context, id uuid.UUID, linkedAccountID *uuid.UUID) error {
	_, err := l.svc.Convert(ctx, id, linkedAccountID)
	return err
}

// Tasks adapts the tasks service.
type Tasks struct {
	svc *tasksvc.Service
}

func NewTasks(svc *tasksvc.Service) *Tasks {
	return &Tasks{svc: svc}
}

func (t *Tasks) Create(ctx context.Context, input ports.CreateTaskInput) (ports.TaskRecord, error) {
	dueDate := input.DueDate
	accountID := input.AccountID
	leadID := input.LeadID
	resp, err := t.svc.Create(ctx, tasktransport.CreateTaskRequest{
		Title:       input.Title,
		Description: input.Description,
		Category:    tasktransport.TaskCategory(input.Category),
		Priority:    tasktransport.TaskPriority(input.Priority),
		DueDate:     &dueDate,
		AccountID:   &accountID,
		PropertyID:  input.PropertyID,
		ContactID:   input.ContactID,
		LeadID:      &leadID,
		AssigneeID:  input.AssigneeID,
	})
	if err != nil {
		return ports.TaskRecord{}, err
	}
	return ports.TaskRecord{ID: resp.ID}, nil
}

func toDomainLead(resp leadtransport.LeadResponse) domain.Lead {
	lead := domain.Lead{
		Name:        resp.Name,
		CompanyType: string(resp.CompanyType),
		Tags:        resp.Tags,
	}
	lead.Phone = deref(resp.Phone)
	lead.Email = deref(resp.Email)
	lead.Website = deref(resp.Website)
	lead.Street = deref(resp.Street)
	lead.City = deref(resp.City)
	lead.State = deref(resp.State)
	lead.ZipCode = deref(resp.ZipCode)
	lead.Notes = deref(resp.Notes)
	return lead
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Interface conformance checks.
var (
	_ ports.Accounts   = (*Accounts)(nil)
	_ ports.Properties = (*Properties)(nil)
	_ ports.Contacts   = (*Contacts)(nil)
	_ ports.Leads      = (*Leads)(nil)
	_ ports.Tasks      = (*Tasks)(nil)
)
