// Package tasks provides the follow-up task bounded context module.
package tasks

import (
	"salescrm_backend/internal/events"
	apphttp "salescrm_backend/internal/http"
	"salescrm_backend/internal/scheduler"
	"salescrm_backend/internal/tasks/handler"
	"salescrm_backend/internal/tasks/repository"
	"salescrm_backend/internal/tasks/service"
	"salescrm_backend/platform/logger"
	"salescrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the tasks bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the tasks module with its dependencies.
// reminders may be nil when no task queue is configured.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, reminders scheduler.ReminderScheduler, bus events.Bus, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, reminders, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tasks"
}

// Service returns the task service for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts task routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	tasksGroup := ctx.Protected.Group("/tasks")
	m.handler.RegisterRoutes(tasksGroup)
}

var _ apphttp.Module = (*Module)(nil)
