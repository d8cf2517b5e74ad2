// Package domain holds the lead conversion workflow aggregate: the step
// machine, the chosen conversion path, staged entity drafts, and the commit
// result summary.
package domain

import "fmt"

// Step is a position in the conversion workflow.
type Step string

const (
	StepLeadValidation  Step = "LeadValidation"
	StepConversionPath  Step = "ConversionPath"
	StepAccountCreation Step = "AccountCreation"
	StepContactCreation Step = "ContactCreation"
	StepTaskTemplate    Step = "TaskTemplate"
	StepSuccess         Step = "Success"
)

// NextStep returns the step after current for the given path. The
// ExistingAccount path skips AccountCreation. TaskTemplate does not advance
// here; its exit runs through the committer.
func NextStep(current Step, path *Path) (Step, error) {
	switch current {
	case StepLeadValidation:
		return StepConversionPath, nil
	case StepConversionPath:
		if path == nil {
			return "", fmt.Errorf("no conversion path chosen")
		}
		if path.Kind() == PathExistingAccount {
			return StepContactCreation, nil
		}
		return StepAccountCreation, nil
	case StepAccountCreation:
		return StepContactCreation, nil
	case StepContactCreation:
		return StepTaskTemplate, nil
	default:
		return "", fmt.Errorf("cannot advance from step %s", current)
	}
}

// PrevStep returns the step before current, mirroring the forward edges.
// Going back from ContactCreation lands on ConversionPath when the path
// skipped AccountCreation.
func PrevStep(current Step, path *Path) (Step, error) {
	switch current {
	case StepConversionPath:
		return StepLeadValidation, nil
	case StepAccountCreation:
		return StepConversionPath, nil
	case StepContactCreation:
		if path != nil && path.Kind() == PathExistingAccount {
			return StepConversionPath, nil
		}
		return StepAccountCreation, nil
	case StepTaskTemplate:
		return StepContactCreation, nil
	default:
		return "", fmt.Errorf("cannot go back from step %s", current)
	}
}
