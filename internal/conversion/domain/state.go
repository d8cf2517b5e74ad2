package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result is the commit summary.
type Result struct {
	AccountID      uuid.UUID
	PropertyID     *uuid.UUID
	ContactsCount  int
	TasksCount     int
	ConversionType PathKind
	Message        string
}

// WorkflowState is the single mutable aggregate for one conversion run. It is
// owned by the step controller; nothing else mutates it. It lives only in the
// session store and is discarded when the workflow closes.
type WorkflowState struct {
	ID            uuid.UUID
	LeadID        uuid.UUID
	CreatedByID   uuid.UUID
	CurrentStep   Step
	Lead          Lead
	Path          *Path
	Candidates    []DuplicateCandidate
	AccountDraft  AccountDraft
	PropertyDraft PropertyDraft
	TaskTemplates []TaskTemplate
	Result        *Result
	CreatedAt     time.Time

	contactDrafts []ContactDraft
}

// NewWorkflowState opens a run at the initial step.
func NewWorkflowState(leadID, createdByID uuid.UUID, lead Lead) *WorkflowState {
	return &WorkflowState{
		ID:          uuid.New(),
		LeadID:      leadID,
		CreatedByID: createdByID,
		CurrentStep: StepLeadValidation,
		Lead:        lead,
		CreatedAt:   time.Now(),
	}
}

// ContactDrafts returns a copy of the staged contacts.
func (s *WorkflowState) ContactDrafts() []ContactDraft {
	out := make([]ContactDraft, len(s.contactDrafts))
	copy(out, s.contactDrafts)
	return out
}

// SetContactDrafts replaces the staged contacts, normalizing the primary
// flag: the first draft marked primary wins, every other flag is cleared, and
// if none is marked the first draft becomes primary. A non-empty list always
// has exactly one primary afterwards.
func (s *WorkflowState) SetContactDrafts(drafts []ContactDraft) {
	normalized := make([]ContactDraft, len(drafts))
	copy(normalized, drafts)

	primary := -1
	for i := range normalized {
		if normalized[i].IsPrimary && primary == -1 {
			primary = i
			continue
		}
		normalized[i].IsPrimary = false
	}
	if primary == -1 && len(normalized) > 0 {
		normalized[0].IsPrimary = true
	}

	s.contactDrafts = normalized
}

// RemoveContactDraft deletes the draft at index i. Removing the primary
// promotes the first remaining draft.
func (s *WorkflowState) RemoveContactDraft(i int) {
	if i < 0 || i >= len(s.contactDrafts) {
		return
	}

	wasPrimary := s.contactDrafts[i].IsPrimary
	s.contactDrafts = append(s.contactDrafts[:i], s.contactDrafts[i+1:]...)

	if wasPrimary && len(s.contactDrafts) > 0 {
		s.contactDrafts[0].IsPrimary = true
	}
}

// PrimaryContact returns the primary draft, if any drafts are staged.
func (s *WorkflowState) PrimaryContact() (ContactDraft, bool) {
	for _, d := range s.contactDrafts {
		if d.IsPrimary {
			return d, true
		}
	}
	return ContactDraft{}, false
}

// Terminal reports whether the run has finished successfully.
func (s *WorkflowState) Terminal() bool {
	return s.CurrentStep == StepSuccess
}
