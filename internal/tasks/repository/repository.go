package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("task not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Category    string
	Priority    string
	Status      string
	DueDate     *time.Time
	AccountID   *uuid.UUID
	PropertyID  *uuid.UUID
	ContactID   *uuid.UUID
	LeadID      *uuid.UUID
	AssigneeID  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskParams struct {
	Title       string
	Description *string
	Category    string
	Priority    string
	DueDate     *time.Time
	AccountID   *uuid.UUID
	PropertyID  *uuid.UUID
	ContactID   *uuid.UUID
	LeadID      *uuid.UUID
	AssigneeID  *uuid.UUID
}

const taskColumns = `
	id, title, description, category, priority, status, due_date, account_id,
	property_id, contact_id, lead_id, assignee_id, created_at, updated_at`

func scanTask(row pgx.Row) (Task, error) {
	var t Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Status,
		&t.DueDate, &t.AccountID, &t.PropertyID, &t.ContactID, &t.LeadID,
		&t.AssigneeID, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *Repository) Create(ctx context.Context, params CreateTaskParams) (Task, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (
			title, description, category, priority, due_date,
			account_id, property_id, contact_id, lead_id, assignee_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING`+taskColumns,
		params.Title, params.Description, params.Category, params.Priority,
		params.DueDate, params.AccountID, params.PropertyID, params.ContactID,
		params.LeadID, params.AssigneeID,
	)
	return scanTask(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Task, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return task, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING`+taskColumns, status, id)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return task, err
}

type ListTasksParams struct {
	AccountID *uuid.UUID
	LeadID    *uuid.UUID
	Status    string
	Page      int
	PageSize  int
}

func (r *Repository) List(ctx context.Context, params ListTasksParams) ([]Task, int, error) {
	where := "TRUE"
	args := []interface{}{}

	if params.AccountID != nil {
		args = append(args, *params.AccountID)
		where += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if params.LeadID != nil {
		args = append(args, *params.LeadID)
		where += fmt.Sprintf(" AND lead_id = $%d", len(args))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM tasks WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	args = append(args, params.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM tasks WHERE %s ORDER BY due_date ASC NULLS LAST, created_at DESC LIMIT $%d OFFSET $%d`,
		taskColumns, where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, task)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}
