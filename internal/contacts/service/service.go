// Package service handles contact operations.
package service

import (
	"context"
	"errors"

	"salescrm_backend/internal/contacts/repository"
	"salescrm_backend/internal/contacts/transport"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/phone"

	"github.com/google/uuid"
)

// Repository defines the data access interface needed by the contact service.
type Repository interface {
	Create(ctx context.Context, params repository.CreateContactParams) (repository.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Contact, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]repository.Contact, error)
}

// Service handles contact operations.
type Service struct {
	repo Repository
}

// New creates a new contact service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new contact under an account.
func (s *Service) Create(ctx context.Context, req transport.CreateContactRequest) (transport.ContactResponse, error) {
	params := repository.CreateContactParams{
		AccountID:  req.AccountID,
		PropertyID: req.PropertyID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IsPrimary:  req.IsPrimary,
	}

	if req.Title != "" {
		params.Title = &req.Title
	}
	if req.Email != "" {
		params.Email = &req.Email
	}
	if req.Phone != "" {
		normalized := phone.NormalizeE164(req.Phone)
		params.Phone = &normalized
	}

	contact, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.ContactResponse{}, err
	}

	return ToContactResponse(contact), nil
}

// GetByID retrieves a contact by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.ContactResponse, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ContactResponse{}, apperr.NotFound("contact not found")
		}
		return transport.ContactResponse{}, err
	}
	return ToContactResponse(contact), nil
}

// ListByAccount returns all contacts linked to an account, primary first.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]transport.ContactResponse, error) {
	items, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.ContactResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToContactResponse(item))
	}
	return responses, nil
}

// ToContactResponse maps a repository contact to its transport representation.
func ToContactResponse(contact repository.Contact) transport.ContactResponse {
	return transport.ContactResponse{
		ID:         contact.ID,
		AccountID:  contact.AccountID,
		PropertyID: contact.PropertyID,
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Title:      contact.Title,
		Email:      contact.Email,
		Phone:      contact.Phone,
		IsPrimary:  contact.IsPrimary,
		CreatedAt:  contact.CreatedAt,
		UpdatedAt:  contact.UpdatedAt,
	}
}
