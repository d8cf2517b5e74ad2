// Package contacts provides the contact bounded context module.
package contacts

import (
	"salescrm_backend/internal/contacts/handler"
	"salescrm_backend/internal/contacts/repository"
	"salescrm_backend/internal/contacts/service"
	apphttp "salescrm_backend/internal/http"
	"salescrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the contacts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the contacts module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "contacts"
}

// Service returns the contact service for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts contact routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	contactsGroup := ctx.Protected.Group("/contacts")
	m.handler.RegisterRoutes(contactsGroup)

	accountsGroup := ctx.Protected.Group("/accounts")
	m.handler.RegisterAccountRoutes(accountsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
