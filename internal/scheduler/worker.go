package scheduler

import (
	"context"
	"fmt"

	accountrepo "salescrm_backend/internal/accounts/repository"
	"salescrm_backend/internal/email"
	taskrepo "salescrm_backend/internal/tasks/repository"
	"salescrm_backend/platform/config"
	"salescrm_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	tasks    *taskrepo.Repository
	accounts *accountrepo.Repository
	sender   email.Sender
	notifyTo string
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, emailCfg config.EmailConfig, pool *pgxpool.Pool, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		tasks:    taskrepo.New(pool),
		accounts: accountrepo.New(pool),
		sender:   sender,
		notifyTo: emailCfg.GetNotificationsEmail(),
		log:      log,
	}

	mux.HandleFunc(TaskTaskReminder, w.handleTaskReminder)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleTaskReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseTaskReminderPayload(task)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(payload.TaskID)
	if err != nil {
		return err
	}

	t, err := w.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	// Reminders only make sense for tasks that are still open.
	if t.Status != "Open" || t.DueDate == nil {
		return nil
	}

	accountName := ""
	if t.AccountID != nil {
		account, err := w.accounts.GetByID(ctx, *t.AccountID)
		if err == nil {
			accountName = account.Name
		}
	}

	if w.notifyTo == "" {
		w.log.Warn("task reminder skipped: no notifications email configured", "task_id", t.ID)
		return nil
	}

	dueDate := t.DueDate.Format("Mon, 02 Jan 2006")
	if err := w.sender.SendTaskReminderEmail(ctx, w.notifyTo, t.Title, accountName, dueDate); err != nil {
		w.log.Error("task reminder email failed", "task_id", t.ID, "error", err)
		return err
	}

	w.log.Info("task reminder sent", "task_id", t.ID)
	return nil
}
