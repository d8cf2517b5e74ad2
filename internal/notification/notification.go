// Package notification listens for domain events and fans them out to the
// channels a sales rep actually sees: summary emails and in-app notifications.
// It is wired onto the in-process event bus at startup.
package notification

import (
	"context"
	"fmt"

	accountsvc "salescrm_backend/internal/accounts/service"
	"salescrm_backend/internal/email"
	"salescrm_backend/internal/events"
	leadsvc "salescrm_backend/internal/leads/service"
	"salescrm_backend/internal/notification/inapp"
	"salescrm_backend/platform/config"
	"salescrm_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	resourceTypeAccount = "account"
	resourceTypeTask    = "task"
)

// Notifier reacts to domain events by sending emails and recording in-app
// notifications for the users involved.
type Notifier struct {
	sender   email.Sender
	inapp    *inapp.Service
	accounts *accountsvc.Service
	leads    *leadsvc.Service
	notifyTo string
	log      *logger.Logger
}

// New creates a Notifier.
func New(sender email.Sender, inappSvc *inapp.Service, accounts *accountsvc.Service, leads *leadsvc.Service, cfg config.EmailConfig, log *logger.Logger) *Notifier {
	return &Notifier{
		sender:   sender,
		inapp:    inappSvc,
		accounts: accounts,
		leads:    leads,
		notifyTo: cfg.GetNotificationsEmail(),
		log:      log,
	}
}

// Register subscribes the notifier to the events it handles.
func (n *Notifier) Register(bus events.Bus) {
	bus.Subscribe(events.LeadConverted{}.EventName(), events.HandlerFunc(n.onLeadConverted))
	bus.Subscribe(events.TaskCreated{}.EventName(), events.HandlerFunc(n.onTaskCreated))
}

func (n *Notifier) onLeadConverted(ctx context.Context, event events.Event) error {
	converted, ok := event.(events.LeadConverted)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	// Name lookups are best-effort; a missing record falls back to a placeholder.
	leadName := "unknown lead"
	accountName := "unknown account"
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if lead, err := n.leads.GetByID(gctx, converted.LeadID); err == nil {
			leadName = lead.Name
		}
		return nil
	})
	g.Go(func() error {
		if account, err := n.accounts.GetByID(gctx, converted.AccountID); err == nil {
			accountName = account.Name
		}
		return nil
	})
	_ = g.Wait()

	accountID := converted.AccountID
	sendErr := n.inapp.Send(ctx, inapp.SendParams{
		UserID:       converted.ConvertedByID,
		Title:        "Lead converted",
		Body:         fmt.Sprintf("%s is now account %s (%d contacts, %d tasks)", leadName, accountName, converted.ContactsCount, converted.TasksCount),
		ResourceID:   &accountID,
		ResourceType: resourceTypeAccount,
		Category:     inapp.CategorySuccess,
	})
	if sendErr != nil {
		n.log.CollaboratorError("notification", "record lead converted", sendErr)
	}

	if n.notifyTo == "" {
		return nil
	}

	err := n.sender.SendLeadConvertedEmail(ctx, n.notifyTo, leadName, accountName, converted.ContactsCount, converted.TasksCount)
	if err != nil {
		n.log.Error("lead converted email failed", "lead_id", converted.LeadID, "error", err)
		return err
	}

	n.log.Info("lead converted email sent", "lead_id", converted.LeadID, "account_id", converted.AccountID)
	return nil
}

func (n *Notifier) onTaskCreated(ctx context.Context, event events.Event) error {
	created, ok := event.(events.TaskCreated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	if created.AssigneeID == nil || *created.AssigneeID == uuid.Nil {
		return nil
	}

	body := created.Title
	if created.DueDate != nil {
		body = fmt.Sprintf("%s (due %s)", created.Title, created.DueDate.Format("Mon, 02 Jan 2006"))
	}

	taskID := created.TaskID
	err := n.inapp.Send(ctx, inapp.SendParams{
		UserID:       *created.AssigneeID,
		Title:        "Task assigned to you",
		Body:         body,
		ResourceID:   &taskID,
		ResourceType: resourceTypeTask,
		Category:     inapp.CategoryInfo,
	})
	if err != nil {
		n.log.CollaboratorError("notification", "record task assigned", err)
	}
	return nil
}
