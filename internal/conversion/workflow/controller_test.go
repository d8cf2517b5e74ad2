package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/logger"
	"salescrm_backend/platform/validator"

	"github.com/google/uuid"
)

type controllerFixture struct {
	*commitFixture
	store *SessionStore
	ctrl  *Controller
}

func newControllerFixture() *controllerFixture {
	f := newCommitFixture()
	store := NewSessionStore(0)
	ctrl := NewController(store, f.leads, f.committer, validator.New(), nil, logger.New("test"))
	return &controllerFixture{commitFixture: f, store: store, ctrl: ctrl}
}

func validAccountDraft() *domain.AccountDraft {
	return &domain.AccountDraft{Name: "Acme Corp", CompanyType: "LLC"}
}

func validTasks() []domain.TaskTemplate {
	return []domain.TaskTemplate{
		{Title: "Kickoff call", Category: "Call", Priority: "High", OffsetDays: 1},
	}
}

func TestControllerRunsTheFullNewProspectWorkflow(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	snap, err := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if snap.CurrentStep != domain.StepLeadValidation {
		t.Fatalf("initial step = %s, want %s", snap.CurrentStep, domain.StepLeadValidation)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	if err != nil {
		t.Fatalf("lead validation advance failed: %v", err)
	}
	if snap.CurrentStep != domain.StepConversionPath {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepConversionPath)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{Kind: domain.PathNewProspect}})
	if err != nil {
		t.Fatalf("path advance failed: %v", err)
	}
	if snap.CurrentStep != domain.StepAccountCreation {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepAccountCreation)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Account: validAccountDraft()})
	if err != nil {
		t.Fatalf("account advance failed: %v", err)
	}
	if snap.CurrentStep != domain.StepContactCreation {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepContactCreation)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Contacts: []domain.ContactDraft{
		{FirstName: "Ann", LastName: "Smith"},
	}})
	if err != nil {
		t.Fatalf("contact advance failed: %v", err)
	}
	if snap.CurrentStep != domain.StepTaskTemplate {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepTaskTemplate)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Tasks: validTasks()})
	if err != nil {
		t.Fatalf("commit advance failed: %v", err)
	}
	if snap.CurrentStep != domain.StepSuccess {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepSuccess)
	}
	if snap.Result == nil {
		t.Fatal("expected a result on the terminal snapshot")
	}
	if snap.Result.ContactsCount != 1 || snap.Result.TasksCount != 1 {
		t.Fatalf("result counts = %d/%d, want 1/1", snap.Result.ContactsCount, snap.Result.TasksCount)
	}
}

func TestControllerSkipsAccountCreationOnExistingAccount(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	selected := uuid.New()
	f.leads.candidates = []domain.DuplicateCandidate{
		{AccountID: selected, Name: "Acme Corp"},
	}

	snap, err := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	if err != nil {
		t.Fatalf("lead validation advance failed: %v", err)
	}
	if len(snap.Candidates) != 1 {
		t.Fatalf("expected one duplicate candidate, got %d", len(snap.Candidates))
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{
		Kind:              domain.PathExistingAccount,
		SelectedAccountID: &selected,
	}})
	if err != nil {
		t.Fatalf("path advance failed: %v", err)
	}
	if snap.CurrentStep != domain.StepContactCreation {
		t.Fatalf("step = %s, want %s (AccountCreation skipped)", snap.CurrentStep, domain.StepContactCreation)
	}
	if snap.SelectedAccount == nil || snap.SelectedAccount.ID != selected {
		t.Fatal("expected the selected account on the snapshot")
	}

	// Back mirrors the skip.
	snap, err = f.ctrl.Back(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Back returned error: %v", err)
	}
	if snap.CurrentStep != domain.StepConversionPath {
		t.Fatalf("back step = %s, want %s", snap.CurrentStep, domain.StepConversionPath)
	}
}

func TestControllerRejectsSelectionOutsideTheCandidateList(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	f.leads.candidates = []domain.DuplicateCandidate{{AccountID: uuid.New(), Name: "Acme Corp"}}

	snap, _ := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})

	stranger := uuid.New()
	_, err := f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{
		Kind:              domain.PathExistingAccount,
		SelectedAccountID: &stranger,
	}})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for unknown selection, got %v", err)
	}

	_, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{Kind: domain.PathExistingAccount}})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing selection, got %v", err)
	}

	_, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing path, got %v", err)
	}
}

func TestControllerToleratesDuplicateMatcherFailure(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	f.leads.candidatesErr = errors.New("matcher offline")

	snap, _ := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	snap, err := f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	if err != nil {
		t.Fatalf("expected matcher failure to be tolerated, got %v", err)
	}
	if snap.CurrentStep != domain.StepConversionPath {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepConversionPath)
	}
	if len(snap.Candidates) != 0 {
		t.Fatalf("expected no candidates after matcher failure, got %d", len(snap.Candidates))
	}
}

func TestControllerFailedCommitStaysRetriggerable(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	snap, _ := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{Kind: domain.PathNewProspect}})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Account: validAccountDraft()})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Contacts: nil})

	f.leads.convertErr = errors.New("down")
	if _, err := f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Tasks: validTasks()}); err == nil {
		t.Fatal("expected the first commit attempt to fail")
	}

	snap, err := f.ctrl.Get(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if snap.CurrentStep != domain.StepTaskTemplate {
		t.Fatalf("step after failed commit = %s, want %s", snap.CurrentStep, domain.StepTaskTemplate)
	}

	f.leads.convertErr = nil
	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Tasks: validTasks()})
	if err != nil {
		t.Fatalf("retriggered commit failed: %v", err)
	}
	if snap.CurrentStep != domain.StepSuccess {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepSuccess)
	}
}

func TestControllerRejectsActionsAfterSuccess(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	snap, _ := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{Kind: domain.PathNewProspect}})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Account: validAccountDraft()})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Contacts: nil})
	snap, err := f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Tasks: nil})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	if _, err := f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Tasks: nil}); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict advancing a completed workflow, got %v", err)
	}
	if _, err := f.ctrl.Back(ctx, snap.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict going back on a completed workflow, got %v", err)
	}

	if f.leads.convertCalls != 1 {
		t.Fatalf("expected exactly one conversion, got %d", f.leads.convertCalls)
	}
}

func TestControllerStartFailsWhenLeadCannotBeLoaded(t *testing.T) {
	f := newControllerFixture()
	f.leads.getErr = apperr.NotFound("lead not found")

	if _, err := f.ctrl.Start(context.Background(), uuid.New(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if f.store.Len() != 0 {
		t.Fatal("expected no session after a failed start")
	}
}

func TestControllerUnknownWorkflowIsNotFound(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	if _, err := f.ctrl.Get(ctx, uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found on Get, got %v", err)
	}
	if _, err := f.ctrl.Advance(ctx, uuid.New(), AdvanceInput{}); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found on Advance, got %v", err)
	}
	if err := f.ctrl.Cancel(ctx, uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found on Cancel, got %v", err)
	}
}

func TestControllerCancelDiscardsTheRun(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	snap, err := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if err := f.ctrl.Cancel(ctx, snap.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if _, err := f.ctrl.Get(ctx, snap.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found after cancel, got %v", err)
	}
}

func TestControllerRequiresPropertyDetailsOnNewPropertyPath(t *testing.T) {
	f := newControllerFixture()
	ctx := context.Background()

	snap, _ := f.ctrl.Start(ctx, uuid.New(), uuid.New())
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{})
	snap, _ = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Path: &PathInput{Kind: domain.PathNewProperty}})

	_, err := f.ctrl.Advance(ctx, snap.ID, AdvanceInput{Account: validAccountDraft()})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error without a property draft, got %v", err)
	}

	snap, err = f.ctrl.Advance(ctx, snap.ID, AdvanceInput{
		Account:  validAccountDraft(),
		Property: &domain.PropertyDraft{Name: "HQ", BuildingType: "Office", Street: "1 Main St"},
	})
	if err != nil {
		t.Fatalf("account advance with property failed: %v", err)
	}
	if snap.CurrentStep != domain.StepContactCreation {
		t.Fatalf("step = %s, want %s", snap.CurrentStep, domain.StepContactCreation)
	}
}

func TestSessionStoreEvictsIdleRuns(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)

	state := domain.NewWorkflowState(uuid.New(), uuid.New(), domain.Lead{Name: "Acme"})
	store.put(state)

	if _, ok := store.get(state.ID); !ok {
		t.Fatal("expected fresh session to be retrievable")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.get(state.ID); ok {
		t.Fatal("expected idle session to be expired")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired session removed, store has %d", store.Len())
	}
}

func TestSessionStoreZeroTTLDisablesEviction(t *testing.T) {
	store := NewSessionStore(0)

	state := domain.NewWorkflowState(uuid.New(), uuid.New(), domain.Lead{Name: "Acme"})
	store.put(state)

	time.Sleep(5 * time.Millisecond)
	if _, ok := store.get(state.ID); !ok {
		t.Fatal("expected session to survive with eviction disabled")
	}
}

func TestSessionStoreEvictIdleSkipsCommittingRuns(t *testing.T) {
	store := NewSessionStore(time.Nanosecond)

	state := domain.NewWorkflowState(uuid.New(), uuid.New(), domain.Lead{Name: "Acme"})
	sess := store.put(state)
	sess.committing = true

	time.Sleep(time.Millisecond)
	store.evictIdle()

	if store.Len() != 1 {
		t.Fatal("expected in-flight commit session to survive eviction")
	}
}
