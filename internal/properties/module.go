// Package properties provides the property bounded context module.
package properties

import (
	apphttp "salescrm_backend/internal/http"
	"salescrm_backend/internal/properties/handler"
	"salescrm_backend/internal/properties/repository"
	"salescrm_backend/internal/properties/service"
	"salescrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the properties bounded context module implementing apphttp.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the properties module.
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
	return "properties"
}

// Service returns the property service for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts property routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	propertiesGroup := ctx.Protected.Group("/properties")
	m.handler.RegisterRoutes(propertiesGroup)

	accountsGroup := ctx.Protected.Group("/accounts")
	m.handler.RegisterAccountRoutes(accountsGroup)
}

// Compile-time check that Module implements apphttp.Module
var _ apphttp.Module = (*Module)(nil)
