package domain

import (
	"testing"

	"github.com/google/uuid"
)

func newTestState() *WorkflowState {
	return NewWorkflowState(uuid.New(), uuid.New(), Lead{Name: "Acme Corp"})
}

func TestSetContactDraftsPromotesFirstWhenNoneMarkedPrimary(t *testing.T) {
	state := newTestState()
	state.SetContactDrafts([]ContactDraft{
		{FirstName: "Ann", LastName: "Smith"},
		{FirstName: "Bob", LastName: "Jones"},
	})

	drafts := state.ContactDrafts()
	if !drafts[0].IsPrimary {
		t.Fatal("expected first draft to be promoted to primary")
	}
	if drafts[1].IsPrimary {
		t.Fatal("expected second draft to stay non-primary")
	}
}

func TestSetContactDraftsFirstMarkedPrimaryWins(t *testing.T) {
	state := newTestState()
	state.SetContactDrafts([]ContactDraft{
		{FirstName: "Ann", LastName: "Smith"},
		{FirstName: "Bob", LastName: "Jones", IsPrimary: true},
		{FirstName: "Cara", LastName: "Lee", IsPrimary: true},
	})

	drafts := state.ContactDrafts()
	if drafts[0].IsPrimary {
		t.Fatal("expected unmarked first draft to stay non-primary")
	}
	if !drafts[1].IsPrimary {
		t.Fatal("expected first marked draft to be primary")
	}
	if drafts[2].IsPrimary {
		t.Fatal("expected later marked draft to have its flag cleared")
	}
}

func TestRemoveContactDraftPromotesFirstRemainingOnPrimaryRemoval(t *testing.T) {
	state := newTestState()
	state.SetContactDrafts([]ContactDraft{
		{FirstName: "Ann", LastName: "Smith", IsPrimary: true},
		{FirstName: "Bob", LastName: "Jones"},
		{FirstName: "Cara", LastName: "Lee"},
	})

	state.RemoveContactDraft(0)

	drafts := state.ContactDrafts()
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts after removal, got %d", len(drafts))
	}
	if !drafts[0].IsPrimary {
		t.Fatal("expected first remaining draft to be promoted")
	}

	primary, ok := state.PrimaryContact()
	if !ok || primary.FirstName != "Bob" {
		t.Fatalf("expected Bob to be primary, got %v ok=%v", primary.FirstName, ok)
	}
}

func TestRemoveContactDraftKeepsPrimaryWhenRemovingAnother(t *testing.T) {
	state := newTestState()
	state.SetContactDrafts([]ContactDraft{
		{FirstName: "Ann", LastName: "Smith", IsPrimary: true},
		{FirstName: "Bob", LastName: "Jones"},
	})

	state.RemoveContactDraft(1)

	primary, ok := state.PrimaryContact()
	if !ok || primary.FirstName != "Ann" {
		t.Fatalf("expected Ann to stay primary, got %v ok=%v", primary.FirstName, ok)
	}
}

func TestRemoveContactDraftIgnoresOutOfRangeIndex(t *testing.T) {
	state := newTestState()
	state.SetContactDrafts([]ContactDraft{{FirstName: "Ann", LastName: "Smith"}})

	state.RemoveContactDraft(-1)
	state.RemoveContactDraft(5)

	if len(state.ContactDrafts()) != 1 {
		t.Fatal("expected drafts to be untouched by out-of-range removal")
	}
}

func TestContactDraftsReturnsACopy(t *testing.T) {
	state := newTestState()
	state.SetContactDrafts([]ContactDraft{{FirstName: "Ann", LastName: "Smith"}})

	drafts := state.ContactDrafts()
	drafts[0].FirstName = "Mutated"

	if state.ContactDrafts()[0].FirstName != "Ann" {
		t.Fatal("expected state drafts to be unaffected by caller mutation")
	}
}

func TestTerminalOnlyAtSuccess(t *testing.T) {
	state := newTestState()
	if state.Terminal() {
		t.Fatal("fresh state should not be terminal")
	}

	state.CurrentStep = StepSuccess
	if !state.Terminal() {
		t.Fatal("state at Success should be terminal")
	}
}

func TestDuplicateCandidateConfidenceTiers(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	cases := []struct {
		score *float64
		want  string
	}{
		{nil, "High"},
		{score(0.95), "High"},
		{score(0.85), "High"},
		{score(0.84), "Medium"},
		{score(0.60), "Medium"},
		{score(0.59), "Low"},
	}
	for _, tc := range cases {
		got := DuplicateCandidate{Score: tc.score}.Confidence()
		if got != tc.want {
			t.Fatalf("Confidence(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestLeadPatchEmpty(t *testing.T) {
	if !(LeadPatch{}).Empty() {
		t.Fatal("zero patch should be empty")
	}

	name := "Acme"
	if (LeadPatch{Name: &name}).Empty() {
		t.Fatal("patch with a field should not be empty")
	}
}
