// Package service handles property operations.
package service

import (
	"context"
	"errors"

	"salescrm_backend/internal/properties/repository"
	"salescrm_backend/internal/properties/transport"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Repository defines the data access interface needed by the property service.
type Repository interface {
	Create(ctx context.Context, params repository.CreatePropertyParams) (repository.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Property, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]repository.Property, error)
}

// Service handles property operations.
type Service struct {
	repo Repository
}

// New creates a new property service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new property under an account.
func (s *Service) Create(ctx context.Context, req transport.CreatePropertyRequest) (transport.PropertyResponse, error) {
	params := repository.CreatePropertyParams{
		AccountID:    req.AccountID,
		Name:         req.Name,
		BuildingType: string(req.BuildingType),
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

	property, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.PropertyResponse{}, err
	}

	return ToPropertyResponse(property), nil
}

// GetByID retrieves a property by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.PropertyResponse, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.PropertyResponse{}, apperr.NotFound("property not found")
		}
		return transport.PropertyResponse{}, err
	}
	return ToPropertyResponse(property), nil
}

// ListByAccount returns all properties linked to an account.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]transport.PropertyResponse, error) {
	items, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.PropertyResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToPropertyResponse(item))
	}
	return responses, nil
}

// ToPropertyResponse maps a repository property to its transport representation.
func ToPropertyResponse(property repository.Property) transport.PropertyResponse {
	return transport.PropertyResponse{
		ID:           property.ID,
		AccountID:    property.AccountID,
		Name:         property.Name,
		BuildingType: transport.BuildingType(property.BuildingType),
		Street:       property.Street,
		City:         property.City,
		State:        property.State,
		ZipCode:      property.ZipCode,
		Notes:        property.Notes,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
	}
}
