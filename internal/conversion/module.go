// Package conversion provides the lead conversion workflow module: the step
// controller, the commit sequence, and their HTTP surface.
package conversion

import (
	"context"

	accountsvc "salescrm_backend/internal/accounts/service"
	contactsvc "salescrm_backend/internal/contacts/service"
	"salescrm_backend/internal/conversion/adapters"
	"salescrm_backend/internal/conversion/handler"
	"salescrm_backend/internal/conversion/workflow"
	"salescrm_backend/internal/events"
	apphttp "salescrm_backend/internal/http"
	leadsvc "salescrm_backend/internal/leads/service"
	propertysvc "salescrm_backend/internal/properties/service"
	tasksvc "salescrm_backend/internal/tasks/service"
	"salescrm_backend/platform/config"
	"salescrm_backend/platform/logger"
	"salescrm_backend/platform/validator"
)

// Services bundles the collaborator services the workflow consumes.
type Services struct {
	Accounts   *accountsvc.Service
	Properties *propertysvc.Service
	Contacts   *contactsvc.Service
	Leads      *leadsvc.Service
	Tasks      *tasksvc.Service
}

// Module is the conversion workflow module implementing http.Module.
type Module struct {
	handler *handler.Handler
	store   *workflow.SessionStore
}

// NewModule wires the workflow: adapters over the collaborator services, the
// committer, the session store, and the step controller.
func NewModule(cfg config.ConversionConfig, svcs Services, val *validator.Validator, bus events.Bus, log *logger.Logger) *Module {
	leadsPort := adapters.NewLeads(svcs.Leads)

	committer := workflow.NewCommitter(
		adapters.NewAccounts(svcs.Accounts),
		adapters.NewProperties(svcs.Properties),
		adapters.NewContacts(svcs.Contacts),
		leadsPort,
		adapters.NewTasks(svcs.Tasks),
		log,
		cfg.GetCommitCallTimeout(),
	)

	store := workflow.NewSessionStore(cfg.GetWorkflowSessionTTL())
	ctrl := workflow.NewController(store, leadsPort, committer, val, bus, log)

	return &Module{
		handler: handler.New(ctrl, val),
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "conversion"
}

// StartEvictor begins background eviction of idle workflow sessions.
func (m *Module) StartEvictor(ctx context.Context) {
	m.store.StartEvictor(ctx)
}

// RegisterRoutes mounts workflow routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/conversions")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
