// Package accounts provides the account bounded context module.
// This file defines the module that encapsulates setup and route registration.
package accounts

import (
	"salescrm_backend/internal/accounts/handler"
	"salescrm_backend/internal/accounts/repository"
	"salescrm_backend/internal/accounts/service"
	apphttp "salescrm_backend/internal/http"
	"salescrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the accounts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the accounts module with its dependencies.
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
	return "accounts"
}

// Service returns the account service for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts account routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	accountsGroup := ctx.Protected.Group("/accounts")
	m.handler.RegisterRoutes(accountsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
