package workflow

import (
	"fmt"
	"strings"

	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/phone"
	"salescrm_backend/platform/validator"
)

// stepValidator runs the step-local checks that gate advancement. A failed
// check blocks the step and never contacts a collaborator.
type stepValidator struct {
	val *validator.Validator
}

func (v stepValidator) email(value string) bool {
	if value == "" {
		return true
	}
	return v.val.Var(value, "email") == nil
}

func (v stepValidator) phone(value string) bool {
	if value == "" {
		return true
	}
	return phone.IsValid(value)
}

// accountDraft validates the AccountCreation step. The property draft is
// checked only on the NewProperty path.
func (v stepValidator) accountDraft(path *domain.Path, account domain.AccountDraft, property domain.PropertyDraft) error {
	if strings.TrimSpace(account.Name) == "" {
		return apperr.Validation("account name is required")
	}
	if strings.TrimSpace(account.CompanyType) == "" {
		return apperr.Validation("company type is required")
	}
	if !v.email(account.Email) {
		return apperr.Validation("account email is malformed")
	}
	if !v.phone(account.Phone) {
		return apperr.Validation("account phone is malformed")
	}

	if path != nil && path.Kind() == domain.PathNewProperty {
		if strings.TrimSpace(property.Name) == "" {
			return apperr.Validation("property name is required")
		}
		if strings.TrimSpace(property.BuildingType) == "" {
			return apperr.Validation("property building type is required")
		}
		if strings.TrimSpace(property.Street) == "" {
			return apperr.Validation("property address is required")
		}
	}

	return nil
}

// contactDrafts validates the ContactCreation step. Zero drafts is allowed;
// each kept draft needs a name and well-formed email/phone when present.
func (v stepValidator) contactDrafts(drafts []domain.ContactDraft) error {
	for i, draft := range drafts {
		if strings.TrimSpace(draft.FirstName) == "" {
			return apperr.Validation(fmt.Sprintf("contact %d: first name is required", i+1))
		}
		if strings.TrimSpace(draft.LastName) == "" {
			return apperr.Validation(fmt.Sprintf("contact %d: last name is required", i+1))
		}
		if !v.email(draft.Email) {
			return apperr.Validation(fmt.Sprintf("contact %d: email is malformed", i+1))
		}
		if !v.phone(draft.Phone) {
			return apperr.Validation(fmt.Sprintf("contact %d: phone is malformed", i+1))
		}
	}
	return nil
}

// taskTemplates validates the TaskTemplate step.
func (v stepValidator) taskTemplates(templates []domain.TaskTemplate) error {
	for i, tmpl := range templates {
		if strings.TrimSpace(tmpl.Title) == "" {
			return apperr.Validation(fmt.Sprintf("task %d: title is required", i+1))
		}
		if strings.TrimSpace(tmpl.Category) == "" {
			return apperr.Validation(fmt.Sprintf("task %d: category is required", i+1))
		}
		if strings.TrimSpace(tmpl.Priority) == "" {
			return apperr.Validation(fmt.Sprintf("task %d: priority is required", i+1))
		}
		if tmpl.OffsetDays < 0 {
			return apperr.Validation(fmt.Sprintf("task %d: offset days cannot be negative", i+1))
		}
	}
	return nil
}

// leadPatch validates validation-step edits before they are sent upstream.
func (v stepValidator) leadPatch(patch domain.LeadPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return apperr.Validation("lead name cannot be emptied")
	}
	if patch.Email != nil && *patch.Email != "" && !v.email(*patch.Email) {
		return apperr.Validation("lead email is malformed")
	}
	if patch.Phone != nil && *patch.Phone != "" && !v.phone(*patch.Phone) {
		return apperr.Validation("lead phone is malformed")
	}
	return nil
}
