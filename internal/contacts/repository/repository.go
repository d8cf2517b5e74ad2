package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("contact not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Contact struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	PropertyID *uuid.UUID
	FirstName  string
	LastName   string
	Title      *string
	Email      *string
	Phone      *string
	IsPrimary  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateContactParams struct {
	AccountID  uuid.UUID
	PropertyID *uuid.UUID
	FirstName  string
	LastName   string
	Title      *string
	Email      *string
	Phone      *string
	IsPrimary  bool
}

const contactColumns = `
	id, account_id, property_id, first_name, last_name, title, email, phone,
	is_primary, created_at, updated_at`

func scanContact(row pgx.Row) (Contact, error) {
	var c Contact
	err := row.Scan(
		&c.ID, &c.AccountID, &c.PropertyID, &c.FirstName, &c.LastName,
		&c.Title, &c.Email, &c.Phone, &c.IsPrimary, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *Repository) Create(ctx context.Context, params CreateContactParams) (Contact, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (account_id, property_id, first_name, last_name, title, email, phone, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING`+contactColumns,
		params.AccountID, params.PropertyID, params.FirstName, params.LastName,
		params.Title, params.Email, params.Phone, params.IsPrimary,
	)
	return scanContact(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Contact, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+contactColumns+` FROM contacts WHERE id = $1`, id)
	contact, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Contact{}, ErrNotFound
	}
	return contact, err
}

func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]Contact, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+contactColumns+`
		FROM contacts
		WHERE account_id = $1
		ORDER BY is_primary DESC, created_at ASC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, contact)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}
