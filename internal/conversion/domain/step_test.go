package domain

import "testing"

func TestNextStepWalksTheNewProspectSequence(t *testing.T) {
	path := NewProspectPath()

	steps := []Step{StepLeadValidation, StepConversionPath, StepAccountCreation, StepContactCreation, StepTaskTemplate}
	for i := 0; i < len(steps)-1; i++ {
		next, err := NextStep(steps[i], path)
		if err != nil {
			t.Fatalf("NextStep(%s) returned error: %v", steps[i], err)
		}
		if next != steps[i+1] {
			t.Fatalf("NextStep(%s) = %s, want %s", steps[i], next, steps[i+1])
		}
	}
}

func TestNextStepSkipsAccountCreationForExistingAccount(t *testing.T) {
	path := ExistingAccountPath(AccountRef{Name: "Acme"})

	next, err := NextStep(StepConversionPath, path)
	if err != nil {
		t.Fatalf("NextStep returned error: %v", err)
	}
	if next != StepContactCreation {
		t.Fatalf("NextStep(ConversionPath) = %s, want %s", next, StepContactCreation)
	}
}

func TestNextStepRequiresAPathLeavingConversionPath(t *testing.T) {
	if _, err := NextStep(StepConversionPath, nil); err == nil {
		t.Fatal("expected error advancing from ConversionPath without a path")
	}
}

func TestNextStepRejectsTaskTemplateAndSuccess(t *testing.T) {
	path := NewProspectPath()

	if _, err := NextStep(StepTaskTemplate, path); err == nil {
		t.Fatal("expected error advancing from TaskTemplate without the committer")
	}
	if _, err := NextStep(StepSuccess, path); err == nil {
		t.Fatal("expected error advancing from Success")
	}
}

func TestPrevStepMirrorsTheExistingAccountSkip(t *testing.T) {
	path := ExistingAccountPath(AccountRef{Name: "Acme"})

	prev, err := PrevStep(StepContactCreation, path)
	if err != nil {
		t.Fatalf("PrevStep returned error: %v", err)
	}
	if prev != StepConversionPath {
		t.Fatalf("PrevStep(ContactCreation) = %s, want %s", prev, StepConversionPath)
	}
}

func TestPrevStepWalksBackThroughAccountCreationOtherwise(t *testing.T) {
	path := NewPropertyPath()

	prev, err := PrevStep(StepContactCreation, path)
	if err != nil {
		t.Fatalf("PrevStep returned error: %v", err)
	}
	if prev != StepAccountCreation {
		t.Fatalf("PrevStep(ContactCreation) = %s, want %s", prev, StepAccountCreation)
	}
}

func TestPrevStepRejectsTheInitialAndTerminalSteps(t *testing.T) {
	if _, err := PrevStep(StepLeadValidation, nil); err == nil {
		t.Fatal("expected error going back from LeadValidation")
	}
	if _, err := PrevStep(StepSuccess, NewProspectPath()); err == nil {
		t.Fatal("expected error going back from Success")
	}
}

func TestSelectedAccountPresentOnlyForExistingAccountPath(t *testing.T) {
	if _, ok := NewProspectPath().SelectedAccount(); ok {
		t.Fatal("NewProspect path should not carry a selected account")
	}
	if _, ok := NewPropertyPath().SelectedAccount(); ok {
		t.Fatal("NewProperty path should not carry a selected account")
	}

	ref, ok := ExistingAccountPath(AccountRef{Name: "Acme"}).SelectedAccount()
	if !ok {
		t.Fatal("ExistingAccount path should carry a selected account")
	}
	if ref.Name != "Acme" {
		t.Fatalf("selected account name = %q, want %q", ref.Name, "Acme")
	}
}
