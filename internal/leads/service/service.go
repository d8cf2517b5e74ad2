// Package service handles lead management and duplicate-account matching.
package service

import (
	"context"
	"errors"

	accounts "salescrm_backend/internal/accounts/normalize"
	accountrepo "salescrm_backend/internal/accounts/repository"
	"salescrm_backend/internal/events"
	"salescrm_backend/internal/leads/repository"
	"salescrm_backend/internal/leads/transport"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/logger"
	"salescrm_backend/platform/phone"
	"salescrm_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Repository defines the data access interface needed by the lead service.
type Repository interface {
	Create(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error)
	Update(ctx context.Context, id uuid.UUID, params repository.UpdateLeadParams) (repository.Lead, error)
	List(ctx context.Context, params repository.ListLeadsParams) ([]repository.Lead, int, error)
	Convert(ctx context.Context, id uuid.UUID, accountID *uuid.UUID) (repository.Lead, error)
}

// AccountMatcher pulls possible duplicate accounts for a set of lead signals.
// Implemented by the accounts service.
type AccountMatcher interface {
	FindMatchCandidates(ctx context.Context, params accountrepo.MatchCandidateParams) ([]accountrepo.Account, error)
}

// Service handles lead operations.
type Service struct {
	repo    Repository
	matcher AccountMatcher
	bus     events.Bus
	log     *logger.Logger
}

// New creates a new lead service.
func New(repo Repository, matcher AccountMatcher, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, matcher: matcher, bus: bus, log: log}
}

// Create creates a new lead.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	params := repository.CreateLeadParams{
		Name:        req.Name,
		CompanyType: string(req.CompanyType),
		Tags:        req.Tags,
	}

	if req.Phone != "" {
		normalized := phone.NormalizeE164(req.Phone)
		params.Phone = &normalized
	}
	if req.Email != "" {
		params.Email = &req.Email
	}
	if req.Website != "" {
		params.Website = &req.Website
	}
	if req.Street != "" {
		params.Street = &req.Street
	}
	if req.City != "" {
		params.City = &req.City
	}
	if req.State != "" {
		params.State = &req.State
	}
	if req.ZipCode != "" {
		params.ZipCode = &req.ZipCode
	}
	if req.Notes != "" {
		notes := sanitize.Text(req.Notes)
		params.Notes = &notes
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadCreated{
			BaseEvent:   events.NewBaseEvent(),
			LeadID:      lead.ID,
			Name:        lead.Name,
			CompanyType: lead.CompanyType,
		})
	}

	return ToLeadResponse(lead), nil
}

// GetByID retrieves a lead by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		return transport.LeadResponse{}, err
	}
	return ToLeadResponse(lead), nil
}

// Update applies a partial update to a lead.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	params := repository.UpdateLeadParams{
		Name:    req.Name,
		Email:   req.Email,
		Website: req.Website,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Tags:    req.Tags,
	}

	if req.CompanyType != nil {
		companyType := string(*req.CompanyType)
		params.CompanyType = &companyType
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}
	if req.Notes != nil {
		notes := sanitize.Text(*req.Notes)
		params.Notes = &notes
	}
	if req.Status != nil {
		status := string(*req.Status)
		params.Status = &status
	}

	lead, err := s.repo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		return transport.LeadResponse{}, err
	}
	return ToLeadResponse(lead), nil
}

// List returns a page of leads.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 25
	}

	params := repository.ListLeadsParams{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != nil {
		params.Status = string(*req.Status)
	}

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	responses := make([]transport.LeadResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToLeadResponse(item))
	}

	totalPages := (total + req.PageSize - 1) / req.PageSize

	return transport.LeadListResponse{
		Items:      responses,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

// FindDuplicateAccounts returns existing accounts that likely represent the
// same organization as the lead, ranked by signal strength. Matcher failures
// degrade to an empty list; duplicate suggestions are advisory.
func (s *Service) FindDuplicateAccounts(ctx context.Context, leadID uuid.UUID) (transport.DuplicateCandidateListResponse, error) {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.DuplicateCandidateListResponse{}, apperr.NotFound("lead not found")
		}
		return transport.DuplicateCandidateListResponse{}, err
	}

	attrs := MatchAttributesFromLead(lead)
	candidates, err := s.matcher.FindMatchCandidates(ctx, accountrepo.MatchCandidateParams{
		NameNormalized: attrs.NameNormalized,
		Domain:         attrs.Domain,
		Phone:          attrs.Phone,
		City:           attrs.City,
		State:          attrs.State,
	})
	if err != nil {
		s.log.CollaboratorError("account", "find match candidates", err)
		return transport.DuplicateCandidateListResponse{Items: []transport.DuplicateCandidateResponse{}}, nil
	}

	ranked := RankCandidates(attrs, candidates)

	items := make([]transport.DuplicateCandidateResponse, 0, len(ranked))
	for _, c := range ranked {
		items = append(items, ToDuplicateCandidateResponse(c))
	}
	return transport.DuplicateCandidateListResponse{Items: items}, nil
}

// Convert marks a lead converted. linkedAccountID is set when the lead is
// linked to an existing account rather than spawning a new one.
func (s *Service) Convert(ctx context.Context, leadID uuid.UUID, linkedAccountID *uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.Convert(ctx, leadID, linkedAccountID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		case errors.Is(err, repository.ErrAlreadyConverted):
			return transport.LeadResponse{}, apperr.Conflict("lead already converted")
		}
		return transport.LeadResponse{}, err
	}
	return ToLeadResponse(lead), nil
}

// ToLeadResponse maps a repository lead to its transport representation.
func ToLeadResponse(lead repository.Lead) transport.LeadResponse {
	tags := lead.Tags
	if tags == nil {
		tags = []string{}
	}
	return transport.LeadResponse{
		ID:                 lead.ID,
		Name:               lead.Name,
		CompanyType:        transport.CompanyType(lead.CompanyType),
		Phone:              lead.Phone,
		Email:              lead.Email,
		Website:            lead.Website,
		Street:             lead.Street,
		City:               lead.City,
		State:              lead.State,
		ZipCode:            lead.ZipCode,
		Notes:              lead.Notes,
		Tags:               tags,
		Status:             transport.LeadStatus(lead.Status),
		ConvertedAccountID: lead.ConvertedAccountID,
		CreatedAt:          lead.CreatedAt,
		UpdatedAt:          lead.UpdatedAt,
	}
}

// MatchAttributesFromLead derives the normalized signals the matcher works on.
func MatchAttributesFromLead(lead repository.Lead) MatchAttributes {
	attrs := MatchAttributes{
		NameNormalized: accounts.NormalizeName(lead.Name),
	}
	if lead.Website != nil {
		attrs.Domain = accounts.ExtractDomain(*lead.Website)
	}
	if lead.Phone != nil {
		attrs.Phone = phone.NormalizeE164(*lead.Phone)
	}
	if lead.City != nil {
		attrs.City = *lead.City
	}
	if lead.State != nil {
		attrs.State = *lead.State
	}
	return attrs
}
