package workflow

import (
	"context"
	"fmt"
	"time"

	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/internal/conversion/ports"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/logger"

	"github.com/google/uuid"
)

// Committer runs the ordered collaborator sequence that materializes the
// entity graph: account, property, contacts, converted-lead marker, tasks.
// There is no cross-entity transaction; the per-step failure policy below is
// the whole consistency story.
type Committer struct {
	accounts    ports.Accounts
	properties  ports.Properties
	contacts    ports.Contacts
	leads       ports.Leads
	tasks       ports.Tasks
	log         *logger.Logger
	callTimeout time.Duration
	now         func() time.Time
}

// NewCommitter wires the committer. callTimeout bounds each collaborator
// call; zero disables the bound.
func NewCommitter(
	accounts ports.Accounts,
	properties ports.Properties,
	contacts ports.Contacts,
	leads ports.Leads,
	tasks ports.Tasks,
	log *logger.Logger,
	callTimeout time.Duration,
) *Committer {
	return &Committer{
		accounts:    accounts,
		properties:  properties,
		contacts:    contacts,
		leads:       leads,
		tasks:       tasks,
		log:         log,
		callTimeout: callTimeout,
		now:         time.Now,
	}
}

// Commit executes the conversion. Account resolution and lead conversion are
// abort-class: their failure stops the sequence and is surfaced. Property,
// individual contacts, and individual tasks are tolerate-class: failures are
// logged and show up only as lower counts. Steps already executed are never
// rolled back.
func (c *Committer) Commit(ctx context.Context, state *domain.WorkflowState) (domain.Result, error) {
	accountID, err := c.resolveAccount(ctx, state)
	if err != nil {
		return domain.Result{}, err
	}

	propertyID := c.createProperty(ctx, state, accountID)

	created := c.createContacts(ctx, state, accountID, propertyID)

	if err := c.convertLead(ctx, state); err != nil {
		return domain.Result{}, err
	}

	tasksCount := c.createTasks(ctx, state, accountID, propertyID, created)

	return domain.Result{
		AccountID:      accountID,
		PropertyID:     propertyID,
		ContactsCount:  len(created),
		TasksCount:     tasksCount,
		ConversionType: state.Path.Kind(),
		Message:        "lead converted",
	}, nil
}

// resolveAccount reuses the selected account on the ExistingAccount path and
// creates one otherwise, with draft values taking precedence over lead values
// field-by-field. Abort-class.
func (c *Committer) resolveAccount(ctx context.Context, state *domain.WorkflowState) (uuid.UUID, error) {
	if ref, ok := state.Path.SelectedAccount(); ok {
		return ref.ID, nil
	}

	input := mergeAccountInput(state.AccountDraft, state.Lead, state.LeadID)

	var record ports.AccountRecord
	err := c.call(ctx, func(ctx context.Context) error {
		var callErr error
		record, callErr = c.accounts.Create(ctx, input)
		return callErr
	})
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindInternal, fmt.Sprintf("account creation failed: %v", err), err)
	}

	return record.ID, nil
}

// createProperty runs only on the NewProperty path with a named draft.
// Tolerate-class: a failure leaves propertyID nil and the commit continues.
func (c *Committer) createProperty(ctx context.Context, state *domain.WorkflowState, accountID uuid.UUID) *uuid.UUID {
	if state.Path.Kind() != domain.PathNewProperty || state.PropertyDraft.Name == "" {
		return nil
	}

	draft := state.PropertyDraft
	var record ports.PropertyRecord
	err := c.call(ctx, func(ctx context.Context) error {
		var callErr error
		record, callErr = c.properties.Create(ctx, ports.CreatePropertyInput{
			AccountID:    accountID,
			Name:         draft.Name,
			BuildingType: draft.BuildingType,
			Street:       draft.Street,
			City:         draft.City,
			State:        draft.State,
			ZipCode:      draft.ZipCode,
		})
		return callErr
	})
	if err != nil {
		c.log.CollaboratorError("property", "create", err)
		return nil
	}

	return &record.ID
}

// createContacts attempts each draft in order and collects the successes.
// Per-item tolerate-class: one failure never stops the loop.
func (c *Committer) createContacts(ctx context.Context, state *domain.WorkflowState, accountID uuid.UUID, propertyID *uuid.UUID) []ports.ContactRecord {
	drafts := state.ContactDrafts()
	created := make([]ports.ContactRecord, 0, len(drafts))

	for _, draft := range drafts {
		input := ports.CreateContactInput{
			AccountID:  accountID,
			PropertyID: propertyID,
			FirstName:  draft.FirstName,
			LastName:   draft.LastName,
			Title:      draft.Title,
			Email:      draft.Email,
			Phone:      draft.Phone,
			IsPrimary:  draft.IsPrimary,
		}

		var record ports.ContactRecord
		err := c.call(ctx, func(ctx context.Context) error {
			var callErr error
			record, callErr = c.contacts.Create(ctx, input)
			return callErr
		})
		if err != nil {
			c.log.CollaboratorError("contact", "create", err)
			continue
		}
		created = append(created, record)
	}

	return created
}

// convertLead marks the lead converted. The account id is passed only on the
// ExistingAccount path, signalling "link" rather than "create". Abort-class,
// and by then steps 1-3 have already produced durable records.
func (c *Committer) convertLead(ctx context.Context, state *domain.WorkflowState) error {
	var linkedAccountID *uuid.UUID
	if ref, ok := state.Path.SelectedAccount(); ok {
		id := ref.ID
		linkedAccountID = &id
	}

	err := c.call(ctx, func(ctx context.Context) error {
		return c.leads.Convert(ctx, state.LeadID, linkedAccountID)
	})
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, fmt.Sprintf("lead conversion failed: %v", err), err)
	}
	return nil
}

// createTasks materializes each template with a due date derived from the
// commit timestamp, linked to the account, property, first created contact,
// and the lead. Per-item tolerate-class.
func (c *Committer) createTasks(ctx context.Context, state *domain.WorkflowState, accountID uuid.UUID, propertyID *uuid.UUID, created []ports.ContactRecord) int {
	var contactID *uuid.UUID
	if len(created) > 0 {
		id := created[0].ID
		contactID = &id
	}

	now := c.now()
	count := 0
	for _, tmpl := range state.TaskTemplates {
		input := ports.CreateTaskInput{
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Category:    tmpl.Category,
			Priority:    tmpl.Priority,
			DueDate:     now.AddDate(0, 0, tmpl.OffsetDays),
			AccountID:   accountID,
			PropertyID:  propertyID,
			ContactID:   contactID,
			LeadID:      state.LeadID,
			AssigneeID:  assignee(state),
		}

		err := c.call(ctx, func(ctx context.Context) error {
			_, callErr := c.tasks.Create(ctx, input)
			return callErr
		})
		if err != nil {
			c.log.CollaboratorError("task", "create", err)
			continue
		}
		count++
	}

	return count
}

func assignee(state *domain.WorkflowState) *uuid.UUID {
	if state.CreatedByID == uuid.Nil {
		return nil
	}
	id := state.CreatedByID
	return &id
}

// call bounds one collaborator call with the per-call timeout.
func (c *Committer) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.callTimeout <= 0 {
		return fn(ctx)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()
	return fn(callCtx)
}

// mergeAccountInput overlays draft values on lead values field-by-field and
// stamps a note referencing the source lead.
func mergeAccountInput(draft domain.AccountDraft, lead domain.Lead, leadID uuid.UUID) ports.CreateAccountInput {
	input := ports.CreateAccountInput{
		Name:         pick(draft.Name, lead.Name),
		CompanyType:  pick(draft.CompanyType, lead.CompanyType),
		Phone:        pick(draft.Phone, lead.Phone),
		Email:        pick(draft.Email, lead.Email),
		Website:      pick(draft.Website, lead.Website),
		Street:       pick(draft.Street, lead.Street),
		City:         pick(draft.City, lead.City),
		State:        pick(draft.State, lead.State),
		ZipCode:      pick(draft.ZipCode, lead.ZipCode),
		Notes:        pick(draft.Notes, lead.Notes),
		SourceLeadID: leadID,
	}

	note := fmt.Sprintf("Converted from lead %q (%s)", lead.Name, leadID)
	if input.Notes != "" {
		input.Notes = input.Notes + "\n" + note
	} else {
		input.Notes = note
	}

	return input
}

func pick(draft, lead string) string {
	if draft != "" {
		return draft
	}
	return lead
}
