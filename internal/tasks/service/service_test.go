package service

import (
	"context"
	"testing"
	"time"

	"salescrm_backend/internal/scheduler"
	"salescrm_backend/internal/tasks/repository"
	"salescrm_backend/internal/tasks/transport"
	"salescrm_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	created repository.Task
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateTaskParams) (repository.Task, error) {
	f.created = repository.Task{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Priority:    params.Priority,
		Status:      "Open",
		DueDate:     params.DueDate,
		AccountID:   params.AccountID,
		AssigneeID:  params.AssigneeID,
	}
	return f.created, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Task, error) {
	if f.created.ID != id {
		return repository.Task{}, repository.ErrNotFound
	}
	return f.created, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (repository.Task, error) {
	if f.created.ID != id {
		return repository.Task{}, repository.ErrNotFound
	}
	f.created.Status = status
	return f.created, nil
}

func (f *fakeRepo) List(_ context.Context, _ repository.ListTasksParams) ([]repository.Task, int, error) {
	return []repository.Task{f.created}, 1, nil
}

type fakeReminders struct {
	calls  int
	runAts []time.Time
}

func (f *fakeReminders) ScheduleTaskReminder(_ context.Context, _ scheduler.TaskReminderPayload, runAt time.Time) error {
	f.calls++
	f.runAts = append(f.runAts, runAt)
	return nil
}

func newTaskService(reminders scheduler.ReminderScheduler) (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	svc := New(repo, reminders, nil, logger.New("test"))
	return svc, repo
}

func TestCreateSchedulesReminderAtStartOfDueDay(t *testing.T) {
	reminders := &fakeReminders{}
	svc, _ := newTaskService(reminders)

	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	due := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), transport.CreateTaskRequest{
		Title:    "Follow up",
		Category: transport.TaskCategoryCall,
		Priority: transport.TaskPriorityNormal,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if reminders.calls != 1 {
		t.Fatalf("expected one reminder scheduled, got %d", reminders.calls)
	}
	want := due.Truncate(24 * time.Hour)
	if !reminders.runAts[0].Equal(want) {
		t.Fatalf("reminder runAt = %v, want %v", reminders.runAts[0], want)
	}
}

func TestCreateSkipsReminderForPastDueDate(t *testing.T) {
	reminders := &fakeReminders{}
	svc, _ := newTaskService(reminders)

	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	due := now.AddDate(0, 0, -2)
	_, err := svc.Create(context.Background(), transport.CreateTaskRequest{
		Title:    "Overdue already",
		Category: transport.TaskCategoryCall,
		Priority: transport.TaskPriorityNormal,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if reminders.calls != 0 {
		t.Fatalf("expected no reminder for a past due date, got %d", reminders.calls)
	}
}

func TestCreateSkipsReminderWithoutDueDateOrScheduler(t *testing.T) {
	reminders := &fakeReminders{}
	svc, _ := newTaskService(reminders)

	_, err := svc.Create(context.Background(), transport.CreateTaskRequest{
		Title:    "No due date",
		Category: transport.TaskCategoryEmail,
		Priority: transport.TaskPriorityLow,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if reminders.calls != 0 {
		t.Fatalf("expected no reminder without a due date, got %d", reminders.calls)
	}

	// A nil scheduler disables reminders without failing task creation.
	svc, _ = newTaskService(nil)
	due := time.Now().AddDate(0, 0, 5)
	if _, err := svc.Create(context.Background(), transport.CreateTaskRequest{
		Title:    "Queue not configured",
		Category: transport.TaskCategoryEmail,
		Priority: transport.TaskPriorityLow,
		DueDate:  &due,
	}); err != nil {
		t.Fatalf("Create returned error with nil scheduler: %v", err)
	}
}

func TestUpdateStatusMapsMissingTaskToNotFound(t *testing.T) {
	svc, _ := newTaskService(nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), transport.UpdateTaskStatusRequest{
		Status: transport.TaskStatusCompleted,
	})
	if err == nil {
		t.Fatal("expected error for unknown task")
	}
}
