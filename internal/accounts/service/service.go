// Package service handles account CRUD operations.
package service

import (
	"context"
	"errors"

	accounts "salescrm_backend/internal/accounts/normalize"
	"salescrm_backend/internal/accounts/repository"
	"salescrm_backend/internal/accounts/transport"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/phone"
	"salescrm_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Repository defines the data access interface needed by the account service.
type Repository interface {
	Create(ctx context.Context, params repository.CreateAccountParams) (repository.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Account, error)
	Update(ctx context.Context, id uuid.UUID, params repository.UpdateAccountParams) (repository.Account, error)
	List(ctx context.Context, params repository.ListAccountsParams) ([]repository.Account, int, error)
	FindMatchCandidates(ctx context.Context, params repository.MatchCandidateParams) ([]repository.Account, error)
}

// Service handles account management operations.
type Service struct {
	repo Repository
}

// New creates a new account service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new account.
func (s *Service) Create(ctx context.Context, req transport.CreateAccountRequest) (transport.AccountResponse, error) {
	params := repository.CreateAccountParams{
		Name:           req.Name,
		NameNormalized: accounts.NormalizeName(req.Name),
		CompanyType:    string(req.CompanyType),
		SourceLeadID:   req.SourceLeadID,
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
		if domain := accounts.ExtractDomain(req.Website); domain != "" {
			params.Domain = &domain
		}
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

	account, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.AccountResponse{}, err
	}

	return ToAccountResponse(account), nil
}

// GetByID retrieves an account by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.AccountResponse, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.AccountResponse{}, apperr.NotFound("account not found")
		}
		return transport.AccountResponse{}, err
	}
	return ToAccountResponse(account), nil
}

// Update applies a partial update to an account.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateAccountRequest) (transport.AccountResponse, error) {
	params := repository.UpdateAccountParams{
		Email:   req.Email,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	}

	if req.Name != nil {
		params.Name = req.Name
		normalized := accounts.NormalizeName(*req.Name)
		params.NameNormalized = &normalized
	}
	if req.CompanyType != nil {
		companyType := string(*req.CompanyType)
		params.CompanyType = &companyType
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}
	if req.Website != nil {
		params.Website = req.Website
		domain := accounts.ExtractDomain(*req.Website)
		params.Domain = &domain
	}
	if req.Notes != nil {
		notes := sanitize.Text(*req.Notes)
		params.Notes = &notes
	}

	account, err := s.repo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.AccountResponse{}, apperr.NotFound("account not found")
		}
		return transport.AccountResponse{}, err
	}
	return ToAccountResponse(account), nil
}

// List returns a page of accounts.
func (s *Service) List(ctx context.Context, req transport.ListAccountsRequest) (transport.AccountListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 25
	}

	items, total, err := s.repo.List(ctx, repository.ListAccountsParams{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return transport.AccountListResponse{}, err
	}

	responses := make([]transport.AccountResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToAccountResponse(item))
	}

	totalPages := (total + req.PageSize - 1) / req.PageSize

	return transport.AccountListResponse{
		Items:      responses,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

// FindMatchCandidates returns raw duplicate candidates for the given signals.
// Ranking is the caller's concern (see the leads duplicate matcher).
func (s *Service) FindMatchCandidates(ctx context.Context, params repository.MatchCandidateParams) ([]repository.Account, error) {
	return s.repo.FindMatchCandidates(ctx, params)
}

// ToAccountResponse maps a repository account to its transport representation.
func ToAccountResponse(account repository.Account) transport.AccountResponse {
	return transport.AccountResponse{
		ID:           account.ID,
		Name:         account.Name,
		CompanyType:  transport.CompanyType(account.CompanyType),
		Phone:        account.Phone,
		Email:        account.Email,
		Website:      account.Website,
		Street:       account.Street,
		City:         account.City,
		State:        account.State,
		ZipCode:      account.ZipCode,
		Notes:        account.Notes,
		SourceLeadID: account.SourceLeadID,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
