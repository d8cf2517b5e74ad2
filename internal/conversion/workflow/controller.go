package workflow

import (
	"context"

	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/internal/conversion/ports"
	"salescrm_backend/internal/events"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/logger"
	"salescrm_backend/platform/validator"

	"github.com/google/uuid"
)

// PathInput is the ConversionPath step payload.
type PathInput struct {
	Kind              domain.PathKind
	SelectedAccountID *uuid.UUID
}

// AdvanceInput carries the step-local payload for one advance action. The
// controller reads only the field matching the current step.
type AdvanceInput struct {
	LeadPatch *domain.LeadPatch
	Path      *PathInput
	Account   *domain.AccountDraft
	Property  *domain.PropertyDraft
	Contacts  []domain.ContactDraft
	Tasks     []domain.TaskTemplate
}

// Snapshot is a read-only copy of a workflow run handed to presenters.
type Snapshot struct {
	ID              uuid.UUID
	LeadID          uuid.UUID
	CurrentStep     domain.Step
	Lead            domain.Lead
	PathKind        *domain.PathKind
	SelectedAccount *domain.AccountRef
	Candidates      []domain.DuplicateCandidate
	AccountDraft    domain.AccountDraft
	PropertyDraft   domain.PropertyDraft
	ContactDrafts   []domain.ContactDraft
	TaskTemplates   []domain.TaskTemplate
	Result          *domain.Result
}

// Controller owns the workflow runs: it validates step-local input, moves the
// step machine forward and backward, and hands the terminal step to the
// committer. One WorkflowState is mutated only by its session's controller
// calls, serialized by the session lock.
type Controller struct {
	store     *SessionStore
	leads     ports.Leads
	committer *Committer
	val       stepValidator
	bus       events.Bus
	log       *logger.Logger
}

// NewController wires the controller.
func NewController(store *SessionStore, leads ports.Leads, committer *Committer, val *validator.Validator, bus events.Bus, log *logger.Logger) *Controller {
	return &Controller{
		store:     store,
		leads:     leads,
		committer: committer,
		val:       stepValidator{val: val},
		bus:       bus,
		log:       log,
	}
}

// Start opens a workflow run for the given lead. The lead must exist; a
// missing lead is a load error that blocks entry entirely.
func (c *Controller) Start(ctx context.Context, leadID, userID uuid.UUID) (Snapshot, error) {
	lead, err := c.leads.Get(ctx, leadID)
	if err != nil {
		return Snapshot{}, err
	}

	state := domain.NewWorkflowState(leadID, userID, lead)
	sess := c.store.put(state)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(state), nil
}

// Get returns the current position and data of a run.
func (c *Controller) Get(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	sess, ok := c.store.get(id)
	if !ok {
		return Snapshot{}, apperr.NotFound("workflow not found")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess.state), nil
}

// Cancel closes a run and discards its state. Collaborator calls already
// issued by an in-flight commit are not cancelled.
func (c *Controller) Cancel(ctx context.Context, id uuid.UUID) error {
	if _, ok := c.store.get(id); !ok {
		return apperr.NotFound("workflow not found")
	}
	c.store.remove(id)
	return nil
}

// Back retreats one step, mirroring the forward edges (including the
// ExistingAccount skip). Staged drafts are kept.
func (c *Controller) Back(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	sess, ok := c.store.get(id)
	if !ok {
		return Snapshot{}, apperr.NotFound("workflow not found")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.state
	if state.Terminal() {
		return Snapshot{}, apperr.Conflict("workflow already completed")
	}
	if sess.committing {
		return Snapshot{}, apperr.Conflict("commit in progress")
	}

	prev, err := domain.PrevStep(state.CurrentStep, state.Path)
	if err != nil {
		return Snapshot{}, apperr.Validation(err.Error())
	}

	state.CurrentStep = prev
	return snapshot(state), nil
}

// Advance validates the payload for the current step and moves forward. At
// the TaskTemplate step, advancing triggers the commit.
func (c *Controller) Advance(ctx context.Context, id uuid.UUID, input AdvanceInput) (Snapshot, error) {
	sess, ok := c.store.get(id)
	if !ok {
		return Snapshot{}, apperr.NotFound("workflow not found")
	}

	sess.mu.Lock()

	state := sess.state
	if state.Terminal() {
		sess.mu.Unlock()
		return Snapshot{}, apperr.Conflict("workflow already completed")
	}
	if sess.committing {
		sess.mu.Unlock()
		return Snapshot{}, apperr.Conflict("commit in progress")
	}

	switch state.CurrentStep {
	case domain.StepLeadValidation:
		snap, err := c.advanceLeadValidation(ctx, state, input)
		sess.mu.Unlock()
		return snap, err
	case domain.StepConversionPath:
		snap, err := c.advanceConversionPath(state, input)
		sess.mu.Unlock()
		return snap, err
	case domain.StepAccountCreation:
		snap, err := c.advanceAccountCreation(state, input)
		sess.mu.Unlock()
		return snap, err
	case domain.StepContactCreation:
		snap, err := c.advanceContactCreation(state, input)
		sess.mu.Unlock()
		return snap, err
	case domain.StepTaskTemplate:
		return c.advanceTaskTemplate(ctx, sess, input)
	default:
		sess.mu.Unlock()
		return Snapshot{}, apperr.Conflict("workflow cannot advance")
	}
}

func (c *Controller) advanceLeadValidation(ctx context.Context, state *domain.WorkflowState, input AdvanceInput) (Snapshot, error) {
	if input.LeadPatch != nil && !input.LeadPatch.Empty() {
		if err := c.val.leadPatch(*input.LeadPatch); err != nil {
			return Snapshot{}, err
		}

		lead, err := c.leads.Patch(ctx, state.LeadID, *input.LeadPatch)
		if err != nil {
			return Snapshot{}, err
		}
		state.Lead = lead
	}

	// Duplicate lookup is advisory; a matcher failure degrades to no
	// suggestions instead of blocking the workflow.
	candidates, err := c.leads.FindDuplicateAccounts(ctx, state.LeadID)
	if err != nil {
		c.log.CollaboratorError("lead", "find duplicate accounts", err)
		candidates = nil
	}
	state.Candidates = candidates

	state.CurrentStep = domain.StepConversionPath
	return snapshot(state), nil
}

func (c *Controller) advanceConversionPath(state *domain.WorkflowState, input AdvanceInput) (Snapshot, error) {
	if input.Path == nil {
		return Snapshot{}, apperr.Validation("a conversion path must be chosen")
	}

	switch input.Path.Kind {
	case domain.PathNewProspect:
		state.Path = domain.NewProspectPath()
	case domain.PathNewProperty:
		state.Path = domain.NewPropertyPath()
	case domain.PathExistingAccount:
		if input.Path.SelectedAccountID == nil {
			return Snapshot{}, apperr.Validation("an existing account must be selected")
		}
		ref, ok := candidateRef(state.Candidates, *input.Path.SelectedAccountID)
		if !ok {
			return Snapshot{}, apperr.Validation("selected account is not among the duplicate candidates")
		}
		state.Path = domain.ExistingAccountPath(ref)
	default:
		return Snapshot{}, apperr.Validation("unknown conversion path")
	}

	next, err := domain.NextStep(state.CurrentStep, state.Path)
	if err != nil {
		return Snapshot{}, apperr.Validation(err.Error())
	}
	state.CurrentStep = next
	return snapshot(state), nil
}

func (c *Controller) advanceAccountCreation(state *domain.WorkflowState, input AdvanceInput) (Snapshot, error) {
	if input.Account == nil {
		return Snapshot{}, apperr.Validation("an account draft is required")
	}

	property := domain.PropertyDraft{}
	if input.Property != nil {
		property = *input.Property
	}

	if err := c.val.accountDraft(state.Path, *input.Account, property); err != nil {
		return Snapshot{}, err
	}

	state.AccountDraft = *input.Account
	state.PropertyDraft = property
	state.CurrentStep = domain.StepContactCreation
	return snapshot(state), nil
}

func (c *Controller) advanceContactCreation(state *domain.WorkflowState, input AdvanceInput) (Snapshot, error) {
	// Zero drafts is allowed; contacts can be skipped entirely.
	if err := c.val.contactDrafts(input.Contacts); err != nil {
		return Snapshot{}, err
	}

	state.SetContactDrafts(input.Contacts)
	state.CurrentStep = domain.StepTaskTemplate
	return snapshot(state), nil
}

// advanceTaskTemplate stages the templates and runs the commit. The session
// lock is dropped for the duration of the collaborator calls; the committing
// flag rejects a concurrent second trigger. A failed commit clears the flag
// so the step stays re-triggerable.
func (c *Controller) advanceTaskTemplate(ctx context.Context, sess *session, input AdvanceInput) (Snapshot, error) {
	state := sess.state

	if err := c.val.taskTemplates(input.Tasks); err != nil {
		sess.mu.Unlock()
		return Snapshot{}, err
	}
	state.TaskTemplates = input.Tasks

	sess.committing = true
	sess.mu.Unlock()

	// Commit outlives the triggering request: once issued, collaborator
	// calls are not cancelled by the caller going away.
	result, err := c.committer.Commit(context.WithoutCancel(ctx), state)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.committing = false

	if err != nil {
		return Snapshot{}, err
	}

	state.Result = &result
	state.CurrentStep = domain.StepSuccess

	if c.bus != nil {
		c.bus.Publish(ctx, events.LeadConverted{
			BaseEvent:      events.NewBaseEvent(),
			LeadID:         state.LeadID,
			AccountID:      result.AccountID,
			PropertyID:     result.PropertyID,
			ContactsCount:  result.ContactsCount,
			TasksCount:     result.TasksCount,
			ConversionType: string(result.ConversionType),
			ConvertedByID:  state.CreatedByID,
		})
	}

	return snapshot(state), nil
}

func candidateRef(candidates []domain.DuplicateCandidate, id uuid.UUID) (domain.AccountRef, bool) {
	for _, candidate := range candidates {
		if candidate.AccountID == id {
			return domain.AccountRef{ID: candidate.AccountID, Name: candidate.Name}, true
		}
	}
	return domain.AccountRef{}, false
}

func snapshot(state *domain.WorkflowState) Snapshot {
	snap := Snapshot{
		ID:            state.ID,
		LeadID:        state.LeadID,
		CurrentStep:   state.CurrentStep,
		Lead:          state.Lead,
		Candidates:    state.Candidates,
		AccountDraft:  state.AccountDraft,
		PropertyDraft: state.PropertyDraft,
		ContactDrafts: state.ContactDrafts(),
		TaskTemplates: state.TaskTemplates,
		Result:        state.Result,
	}

	if state.Path != nil {
		kind := state.Path.Kind()
		snap.PathKind = &kind
		if ref, ok := state.Path.SelectedAccount(); ok {
			snap.SelectedAccount = &ref
		}
	}

	return snap
}
