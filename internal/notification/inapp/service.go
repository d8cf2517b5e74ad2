package inapp

import (
	"context"
	"errors"

	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/logger"

	"github.com/google/uuid"
)

// Notification categories shown in the client.
const (
	CategoryInfo    = "info"
	CategorySuccess = "success"
)

type Service struct {
	repo *Repository
	log  *logger.Logger
}

func NewService(repo *Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

type SendParams struct {
	UserID       uuid.UUID
	Title        string
	Body         string
	ResourceID   *uuid.UUID
	ResourceType string
	Category     string
}

// Send persists an in-app notification for the given user. Callers with a
// uuid.Nil user have nobody to notify and are silently skipped.
func (s *Service) Send(ctx context.Context, p SendParams) error {
	if p.UserID == uuid.Nil {
		return nil
	}
	if p.Category == "" {
		p.Category = CategoryInfo
	}

	var resourceType *string
	if p.ResourceType != "" {
		resourceType = &p.ResourceType
	}

	_, err := s.repo.Create(ctx, CreateParams{
		UserID:       p.UserID,
		Title:        p.Title,
		Body:         p.Body,
		ResourceID:   p.ResourceID,
		ResourceType: resourceType,
		Category:     p.Category,
	})
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "persist in-app notification", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	items, total, err := s.repo.List(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "list notifications", err)
	}
	return items, total, nil
}

func (s *Service) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "count unread notifications", err)
	}
	return count, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	err := s.repo.MarkRead(ctx, userID, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("notification not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "mark notification read", err)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "mark all notifications read", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("notification not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete notification", err)
	}
	return nil
}
