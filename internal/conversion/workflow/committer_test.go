package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/internal/conversion/ports"
	"salescrm_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeAccounts struct {
	createCalls int
	createErr   error
	lastInput   ports.CreateAccountInput
	record      ports.AccountRecord
}

func (f *fakeAccounts) Create(_ context.Context, input ports.CreateAccountInput) (ports.AccountRecord, error) {
	f.createCalls++
	f.lastInput = input
	if f.createErr != nil {
		return ports.AccountRecord{}, f.createErr
	}
	return f.record, nil
}

func (f *fakeAccounts) Get(_ context.Context, id uuid.UUID) (ports.AccountRecord, error) {
	return ports.AccountRecord{ID: id}, nil
}

type fakeProperties struct {
	createCalls int
	createErr   error
	record      ports.PropertyRecord
}

func (f *fakeProperties) Create(_ context.Context, _ ports.CreatePropertyInput) (ports.PropertyRecord, error) {
	f.createCalls++
	if f.createErr != nil {
		return ports.PropertyRecord{}, f.createErr
	}
	return f.record, nil
}

type fakeContacts struct {
	createCalls int
	failAtCall  int // 1-based; 0 means never fail
	inputs      []ports.CreateContactInput
}

func (f *fakeContacts) Create(_ context.Context, input ports.CreateContactInput) (ports.ContactRecord, error) {
	f.createCalls++
	if f.failAtCall != 0 && f.createCalls == f.failAtCall {
		return ports.ContactRecord{}, errors.New("contact rejected")
	}
	f.inputs = append(f.inputs, input)
	return ports.ContactRecord{ID: uuid.New()}, nil
}

type fakeLeads struct {
	lead            domain.Lead
	getErr          error
	patchErr        error
	candidates      []domain.DuplicateCandidate
	candidatesErr   error
	convertCalls    int
	convertErr      error
	lastLinkedAccID *uuid.UUID
}

func (f *fakeLeads) Get(_ context.Context, _ uuid.UUID) (domain.Lead, error) {
	if f.getErr != nil {
		return domain.Lead{}, f.getErr
	}
	return f.lead, nil
}

func (f *fakeLeads) Patch(_ context.Context, _ uuid.UUID, _ domain.LeadPatch) (domain.Lead, error) {
	if f.patchErr != nil {
		return domain.Lead{}, f.patchErr
	}
	return f.lead, nil
}

func (f *fakeLeads) FindDuplicateAccounts(_ context.Context, _ uuid.UUID) ([]domain.DuplicateCandidate, error) {
	if f.candidatesErr != nil {
		return nil, f.candidatesErr
	}
	return f.candidates, nil
}

func (f *fakeLeads) Convert(_ context.Context, _ uuid.UUID, linkedAccountID *uuid.UUID) error {
	f.convertCalls++
	f.lastLinkedAccID = linkedAccountID
	if f.convertErr != nil {
		return f.convertErr
	}
	return nil
}

type fakeTasks struct {
	createCalls int
	failAtCall  int
	inputs      []ports.CreateTaskInput
}

func (f *fakeTasks) Create(_ context.Context, input ports.CreateTaskInput) (ports.TaskRecord, error) {
	f.createCalls++
	if f.failAtCall != 0 && f.createCalls == f.failAtCall {
		return ports.TaskRecord{}, errors.New("task rejected")
	}
	f.inputs = append(f.inputs, input)
	return ports.TaskRecord{ID: uuid.New()}, nil
}

type commitFixture struct {
	accounts   *fakeAccounts
	properties *fakeProperties
	contacts   *fakeContacts
	leads      *fakeLeads
	tasks      *fakeTasks
	committer  *Committer
}

func newCommitFixture() *commitFixture {
	f := &commitFixture{
		accounts:   &fakeAccounts{record: ports.AccountRecord{ID: uuid.New(), Name: "Acme Corp"}},
		properties: &fakeProperties{record: ports.PropertyRecord{ID: uuid.New()}},
		contacts:   &fakeContacts{},
		leads:      &fakeLeads{lead: domain.Lead{Name: "Acme Corp"}},
		tasks:      &fakeTasks{},
	}
	f.committer = NewCommitter(f.accounts, f.properties, f.contacts, f.leads, f.tasks, logger.New("test"), 0)
	return f
}

func stateOnPath(path *domain.Path) *domain.WorkflowState {
	state := domain.NewWorkflowState(uuid.New(), uuid.New(), domain.Lead{
		Name:        "Acme Corp",
		CompanyType: "LLC",
		City:        "Austin",
	})
	state.Path = path
	state.CurrentStep = domain.StepTaskTemplate
	return state
}

func TestCommitNewProspectWithoutContactsOrTasks(t *testing.T) {
	f := newCommitFixture()
	state := stateOnPath(domain.NewProspectPath())

	result, err := f.committer.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}

	if result.AccountID != f.accounts.record.ID {
		t.Fatalf("result account = %s, want %s", result.AccountID, f.accounts.record.ID)
	}
	if result.PropertyID != nil {
		t.Fatal("expected no property on the NewProspect path")
	}
	if result.ContactsCount != 0 || result.TasksCount != 0 {
		t.Fatalf("expected zero counts, got contacts=%d tasks=%d", result.ContactsCount, result.TasksCount)
	}
	if result.ConversionType != domain.PathNewProspect {
		t.Fatalf("conversion type = %s, want %s", result.ConversionType, domain.PathNewProspect)
	}
	if f.leads.convertCalls != 1 {
		t.Fatalf("expected one convert call, got %d", f.leads.convertCalls)
	}
	if f.leads.lastLinkedAccID != nil {
		t.Fatal("fresh account paths must not pass a linked account id")
	}
	if f.properties.createCalls != 0 {
		t.Fatalf("expected no property calls, got %d", f.properties.createCalls)
	}
}

func TestCommitMergesDraftOverLeadAndStampsSourceNote(t *testing.T) {
	f := newCommitFixture()
	state := stateOnPath(domain.NewProspectPath())
	state.AccountDraft = domain.AccountDraft{Name: "Acme Holdings", Notes: "warm intro"}

	if _, err := f.committer.Commit(context.Background(), state); err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}

	input := f.accounts.lastInput
	if input.Name != "Acme Holdings" {
		t.Fatalf("draft name should win, got %q", input.Name)
	}
	if input.CompanyType != "LLC" {
		t.Fatalf("lead value should fill absent draft field, got %q", input.CompanyType)
	}
	if input.SourceLeadID != state.LeadID {
		t.Fatal("expected source lead id on the account input")
	}
	if !strings.Contains(input.Notes, "warm intro") || !strings.Contains(input.Notes, "Converted from lead") {
		t.Fatalf("expected notes to keep the draft note and the source stamp, got %q", input.Notes)
	}
}

func TestCommitExistingAccountReusesSelectionAndLinksLead(t *testing.T) {
	f := newCommitFixture()
	selected := domain.AccountRef{ID: uuid.New(), Name: "Acme Corp"}
	state := stateOnPath(domain.ExistingAccountPath(selected))

	result, err := f.committer.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}

	if f.accounts.createCalls != 0 {
		t.Fatalf("expected no account creation, got %d calls", f.accounts.createCalls)
	}
	if result.AccountID != selected.ID {
		t.Fatalf("result account = %s, want selected %s", result.AccountID, selected.ID)
	}
	if f.leads.lastLinkedAccID == nil || *f.leads.lastLinkedAccID != selected.ID {
		t.Fatal("expected convert to carry the selected account id")
	}
}

func TestCommitToleratesPropertyFailure(t *testing.T) {
	f := newCommitFixture()
	f.properties.createErr = errors.New("storage down")
	state := stateOnPath(domain.NewPropertyPath())
	state.PropertyDraft = domain.PropertyDraft{Name: "HQ", BuildingType: "Office", Street: "1 Main St"}
	state.SetContactDrafts([]domain.ContactDraft{{FirstName: "Ann", LastName: "Smith"}})

	result, err := f.committer.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("expected commit to tolerate the property failure, got %v", err)
	}
	if result.PropertyID != nil {
		t.Fatal("expected nil property id after failed creation")
	}
	if result.ContactsCount != 1 {
		t.Fatalf("expected contact creation to proceed, got count %d", result.ContactsCount)
	}
}

func TestCommitToleratesSingleContactFailure(t *testing.T) {
	f := newCommitFixture()
	f.contacts.failAtCall = 2
	state := stateOnPath(domain.NewProspectPath())
	state.SetContactDrafts([]domain.ContactDraft{
		{FirstName: "Ann", LastName: "Smith"},
		{FirstName: "Bob", LastName: "Jones"},
		{FirstName: "Cara", LastName: "Lee"},
	})

	result, err := f.committer.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("expected commit to tolerate the contact failure, got %v", err)
	}
	if result.ContactsCount != 2 {
		t.Fatalf("expected contacts count 2, got %d", result.ContactsCount)
	}
	if f.contacts.createCalls != 3 {
		t.Fatalf("expected all three drafts attempted, got %d calls", f.contacts.createCalls)
	}
}

func TestCommitAbortsBeforeAnyWriteWhenAccountCreationFails(t *testing.T) {
	f := newCommitFixture()
	f.accounts.createErr = errors.New("db unavailable")
	state := stateOnPath(domain.NewPropertyPath())
	state.PropertyDraft = domain.PropertyDraft{Name: "HQ"}
	state.SetContactDrafts([]domain.ContactDraft{{FirstName: "Ann", LastName: "Smith"}})
	state.TaskTemplates = []domain.TaskTemplate{{Title: "Call"}}

	if _, err := f.committer.Commit(context.Background(), state); err == nil {
		t.Fatal("expected commit to abort on account creation failure")
	}

	if f.properties.createCalls != 0 || f.contacts.createCalls != 0 || f.leads.convertCalls != 0 || f.tasks.createCalls != 0 {
		t.Fatal("expected no downstream calls after the account abort")
	}
}

func TestCommitLeadConversionFailureAbortsWithoutRollback(t *testing.T) {
	f := newCommitFixture()
	f.leads.convertErr = errors.New("already converted elsewhere")
	state := stateOnPath(domain.NewProspectPath())
	state.SetContactDrafts([]domain.ContactDraft{{FirstName: "Ann", LastName: "Smith"}})
	state.TaskTemplates = []domain.TaskTemplate{{Title: "Call"}}

	if _, err := f.committer.Commit(context.Background(), state); err == nil {
		t.Fatal("expected commit to surface the lead conversion failure")
	}

	// Earlier writes stay in place; there is no compensation.
	if f.accounts.createCalls != 1 {
		t.Fatalf("expected the account to have been created, got %d calls", f.accounts.createCalls)
	}
	if _, err := f.accounts.Get(context.Background(), f.accounts.record.ID); err != nil {
		t.Fatalf("expected the created account to remain retrievable, got %v", err)
	}
	if f.contacts.createCalls != 1 {
		t.Fatalf("expected the contact to have been created, got %d calls", f.contacts.createCalls)
	}
	if f.tasks.createCalls != 0 {
		t.Fatal("expected no task creation after the abort")
	}
}

func TestCommitDerivesTaskDueDatesFromOffsetDays(t *testing.T) {
	f := newCommitFixture()
	commitAt := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	f.committer.now = func() time.Time { return commitAt }

	state := stateOnPath(domain.NewProspectPath())
	state.SetContactDrafts([]domain.ContactDraft{{FirstName: "Ann", LastName: "Smith"}})
	state.TaskTemplates = []domain.TaskTemplate{
		{Title: "Kickoff call", OffsetDays: 0},
		{Title: "Follow up", OffsetDays: 7},
	}

	result, err := f.committer.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	if result.TasksCount != 2 {
		t.Fatalf("expected 2 tasks, got %d", result.TasksCount)
	}

	if !f.tasks.inputs[0].DueDate.Equal(commitAt) {
		t.Fatalf("offset 0 due date = %v, want %v", f.tasks.inputs[0].DueDate, commitAt)
	}
	want := commitAt.AddDate(0, 0, 7)
	if !f.tasks.inputs[1].DueDate.Equal(want) {
		t.Fatalf("offset 7 due date = %v, want %v", f.tasks.inputs[1].DueDate, want)
	}

	got := f.tasks.inputs[0]
	if got.AccountID != result.AccountID {
		t.Fatal("expected tasks linked to the created account")
	}
	if got.ContactID == nil {
		t.Fatal("expected tasks linked to the first created contact")
	}
	if got.AssigneeID == nil || *got.AssigneeID != state.CreatedByID {
		t.Fatal("expected tasks assigned to the workflow creator")
	}
}

func TestCommitToleratesSingleTaskFailure(t *testing.T) {
	f := newCommitFixture()
	f.tasks.failAtCall = 1
	state := stateOnPath(domain.NewProspectPath())
	state.TaskTemplates = []domain.TaskTemplate{
		{Title: "Kickoff call"},
		{Title: "Follow up", OffsetDays: 3},
	}

	result, err := f.committer.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("expected commit to tolerate the task failure, got %v", err)
	}
	if result.TasksCount != 1 {
		t.Fatalf("expected tasks count 1, got %d", result.TasksCount)
	}
}
