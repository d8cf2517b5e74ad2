// Package service handles follow-up task operations.
package service

import (
	"context"
	"errors"
	"time"

	"salescrm_backend/internal/events"
	"salescrm_backend/internal/scheduler"
	"salescrm_backend/internal/tasks/repository"
	"salescrm_backend/internal/tasks/transport"
	"salescrm_backend/platform/apperr"
	"salescrm_backend/platform/logger"
	"salescrm_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Repository defines the data access interface needed by the task service.
type Repository interface {
	Create(ctx context.Context, params repository.CreateTaskParams) (repository.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (repository.Task, error)
	List(ctx context.Context, params repository.ListTasksParams) ([]repository.Task, int, error)
}

// Service handles task management operations.
type Service struct {
	repo      Repository
	reminders scheduler.ReminderScheduler
	bus       events.Bus
	log       *logger.Logger
	now       func() time.Time
}

// New creates a new task service. reminders may be nil when the queue is not
// configured; reminder scheduling is then skipped.
func New(repo Repository, reminders scheduler.ReminderScheduler, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		reminders: reminders,
		bus:       bus,
		log:       log,
		now:       time.Now,
	}
}

// Create creates a new task. Tasks with a future due date get a reminder
// enqueued for the start of the due day.
func (s *Service) Create(ctx context.Context, req transport.CreateTaskRequest) (transport.TaskResponse, error) {
	params := repository.CreateTaskParams{
		Title:      req.Title,
		Category:   string(req.Category),
		Priority:   string(req.Priority),
		DueDate:    req.DueDate,
		AccountID:  req.AccountID,
		PropertyID: req.PropertyID,
		ContactID:  req.ContactID,
		LeadID:     req.LeadID,
		AssigneeID: req.AssigneeID,
	}
	if req.Description != "" {
		description := sanitize.Text(req.Description)
		params.Description = &description
	}

	task, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.TaskResponse{}, err
	}

	s.scheduleReminder(ctx, task)

	if s.bus != nil {
		s.bus.Publish(ctx, events.TaskCreated{
			BaseEvent:  events.NewBaseEvent(),
			TaskID:     task.ID,
			Title:      task.Title,
			DueDate:    task.DueDate,
			AccountID:  task.AccountID,
			AssigneeID: task.AssigneeID,
		})
	}

	return ToTaskResponse(task), nil
}

// GetByID retrieves a task by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.TaskResponse{}, apperr.NotFound("task not found")
		}
		return transport.TaskResponse{}, err
	}
	return ToTaskResponse(task), nil
}

// UpdateStatus transitions a task to the given status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req transport.UpdateTaskStatusRequest) (transport.TaskResponse, error) {
	task, err := s.repo.UpdateStatus(ctx, id, string(req.Status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.TaskResponse{}, apperr.NotFound("task not found")
		}
		return transport.TaskResponse{}, err
	}
	return ToTaskResponse(task), nil
}

// List returns a page of tasks matching the given filters.
func (s *Service) List(ctx context.Context, req transport.ListTasksRequest) (transport.TaskListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 25
	}

	params := repository.ListTasksParams{
		AccountID: req.AccountID,
		LeadID:    req.LeadID,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if req.Status != nil {
		params.Status = string(*req.Status)
	}

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.TaskListResponse{}, err
	}

	responses := make([]transport.TaskResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToTaskResponse(item))
	}

	totalPages := (total + req.PageSize - 1) / req.PageSize

	return transport.TaskListResponse{
		Items:      responses,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) scheduleReminder(ctx context.Context, task repository.Task) {
	if s.reminders == nil || task.DueDate == nil {
		return
	}

	runAt := task.DueDate.Truncate(24 * time.Hour)
	if !runAt.After(s.now()) {
		return
	}

	err := s.reminders.ScheduleTaskReminder(ctx, scheduler.TaskReminderPayload{
		TaskID: task.ID.String(),
	}, runAt)
	if err != nil {
		s.log.CollaboratorError("task", "schedule reminder", err)
	}
}

// ToTaskResponse maps a repository task to its transport representation.
func ToTaskResponse(task repository.Task) transport.TaskResponse {
	return transport.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    transport.TaskCategory(task.Category),
		Priority:    transport.TaskPriority(task.Priority),
		Status:      transport.TaskStatus(task.Status),
		DueDate:     task.DueDate,
		AccountID:   task.AccountID,
		PropertyID:  task.PropertyID,
		ContactID:   task.ContactID,
		LeadID:      task.LeadID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
