package transport

import (
	"salescrm_backend/internal/conversion/domain"
	"salescrm_backend/internal/conversion/workflow"
)

// ToWorkflowResponse maps a controller snapshot to its transport view. Pure
// step-to-view mapping, no branching logic beyond it.
func ToWorkflowResponse(snap workflow.Snapshot) WorkflowResponse {
	resp := WorkflowResponse{
		ID:          snap.ID,
		LeadID:      snap.LeadID,
		CurrentStep: string(snap.CurrentStep),
		Lead:        toLeadView(snap),
		Candidates:  toCandidateViews(snap.Candidates),
		Contacts:    toContactViews(snap.ContactDrafts),
		Tasks:       toTaskViews(snap.TaskTemplates),
	}

	if snap.PathKind != nil {
		path := string(*snap.PathKind)
		resp.Path = &path
	}
	if snap.SelectedAccount != nil {
		resp.SelectedAccount = &SelectedAccountView{
			ID:   snap.SelectedAccount.ID,
			Name: snap.SelectedAccount.Name,
		}
	}
	if snap.Result != nil {
		resp.Result = &ResultView{
			AccountID:      snap.Result.AccountID,
			PropertyID:     snap.Result.PropertyID,
			ContactsCount:  snap.Result.ContactsCount,
			TasksCount:     snap.Result.TasksCount,
			ConversionType: string(snap.Result.ConversionType),
			Message:        snap.Result.Message,
		}
	}

	return resp
}

func toLeadView(snap workflow.Snapshot) LeadView {
	lead := snap.Lead
	return LeadView{
		ID:          snap.LeadID,
		Name:        lead.Name,
		CompanyType: lead.CompanyType,
		Phone:       lead.Phone,
		Email:       lead.Email,
		Website:     lead.Website,
		Street:      lead.Street,
		City:        lead.City,
		State:       lead.State,
		ZipCode:     lead.ZipCode,
		Notes:       lead.Notes,
		Tags:        lead.Tags,
	}
}

func toCandidateViews(candidates []domain.DuplicateCandidate) []DuplicateCandidateView {
	if len(candidates) == 0 {
		return nil
	}
	views := make([]DuplicateCandidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, DuplicateCandidateView{
			AccountID:   c.AccountID,
			Name:        c.Name,
			CompanyType: c.CompanyType,
			City:        c.City,
			State:       c.State,
			Score:       c.Score,
			Confidence:  c.Confidence(),
		})
	}
	return views
}

func toContactViews(drafts []domain.ContactDraft) []ContactDraftView {
	if len(drafts) == 0 {
		return nil
	}
	views := make([]ContactDraftView, 0, len(drafts))
	for _, d := range drafts {
		views = append(views, ContactDraftView{
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Title:     d.Title,
			Email:     d.Email,
			Phone:     d.Phone,
			IsPrimary: d.IsPrimary,
		})
	}
	return views
}

func toTaskViews(templates []domain.TaskTemplate) []TaskTemplateView {
	if len(templates) == 0 {
		return nil
	}
	views := make([]TaskTemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, TaskTemplateView{
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Priority:    t.Priority,
			OffsetDays:  t.OffsetDays,
		})
	}
	return views
}

// ToAdvanceInput maps the request payload to the controller's input type.
func ToAdvanceInput(req AdvanceWorkflowRequest) workflow.AdvanceInput {
	input := workflow.AdvanceInput{}

	if req.Lead != nil {
		input.LeadPatch = &domain.LeadPatch{
			Name:    req.Lead.Name,
			Phone:   req.Lead.Phone,
			Email:   req.Lead.Email,
			Website: req.Lead.Website,
			Street:  req.Lead.Street,
			City:    req.Lead.City,
			State:   req.Lead.State,
			ZipCode: req.Lead.ZipCode,
			Notes:   req.Lead.Notes,
		}
	}

	if req.Path != nil {
		input.Path = &workflow.PathInput{
			Kind:              domain.PathKind(req.Path.Path),
			SelectedAccountID: req.Path.SelectedAccountID,
		}
	}

	if req.Account != nil {
		input.Account = &domain.AccountDraft{
			Name:        req.Account.Name,
			CompanyType: req.Account.CompanyType,
			Phone:       req.Account.Phone,
			Email:       req.Account.Email,
			Website:     req.Account.Website,
			Street:      req.Account.Street,
			City:        req.Account.City,
			State:       req.Account.State,
			ZipCode:     req.Account.ZipCode,
			Notes:       req.Account.Notes,
		}
	}

	if req.Property != nil {
		input.Property = &domain.PropertyDraft{
			Name:         req.Property.Name,
			BuildingType: req.Property.BuildingType,
			Street:       req.Property.Street,
			City:         req.Property.City,
			State:        req.Property.State,
			ZipCode:      req.Property.ZipCode,
		}
	}

	if req.Contacts != nil {
		drafts := make([]domain.ContactDraft, 0, len(req.Contacts))
		for _, c := range req.Contacts {
			drafts = append(drafts, domain.ContactDraft{
				FirstName: c.FirstName,
				LastName:  c.LastName,
				Title:     c.Title,
				Email:     c.Email,
				Phone:     c.Phone,
				IsPrimary: c.IsPrimary,
			})
		}
		input.Contacts = drafts
	}

	if req.Tasks != nil {
		templates := make([]domain.TaskTemplate, 0, len(req.Tasks))
		for _, t := range req.Tasks {
			templates = append(templates, domain.TaskTemplate{
				Title:       t.Title,
				Description: t.Description,
				Category:    t.Category,
				Priority:    t.Priority,
				OffsetDays:  t.OffsetDays,
			})
		}
		input.Tasks = templates
	}

	return input
}
