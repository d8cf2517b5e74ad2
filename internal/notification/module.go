package notification

import (
	accountsvc "salescrm_backend/internal/accounts/service"
	"salescrm_backend/internal/email"
	"salescrm_backend/internal/events"
	apphttp "salescrm_backend/internal/http"
	leadsvc "salescrm_backend/internal/leads/service"
	"salescrm_backend/internal/notification/handler"
	"salescrm_backend/internal/notification/inapp"
	"salescrm_backend/platform/config"
	"salescrm_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the notification bounded context module implementing http.Module.
type Module struct {
	handler  *handler.Handler
	notifier *Notifier
}

// NewModule creates the notification module and subscribes it to the event bus.
func NewModule(pool *pgxpool.Pool, sender email.Sender, accounts *accountsvc.Service, leads *leadsvc.Service, cfg config.EmailConfig, bus events.Bus, log *logger.Logger) *Module {
	repo := inapp.New(pool)
	svc := inapp.NewService(repo, log)
	notifier := New(sender, svc, accounts, leads, cfg, log)
	notifier.Register(bus)

	return &Module{
		handler:  handler.New(svc),
		notifier: notifier,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notifications"
}

// RegisterRoutes mounts notification routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/notifications")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
