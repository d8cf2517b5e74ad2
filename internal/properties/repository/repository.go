package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("property not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Property struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Name         string
	BuildingType string
	Street       *string
	City         *string
	State        *string
	ZipCode      *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreatePropertyParams struct {
	AccountID    uuid.UUID
	Name         string
	BuildingType string
	Street       *string
	City         *string
	State        *string
	ZipCode      *string
	Notes        *string
}

const propertyColumns = `
	id, account_id, name, building_type, street, city, state, zip_code, notes,
	created_at, updated_at`

func scanProperty(row pgx.Row) (Property, error) {
	var p Property
	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.BuildingType, &p.Street, &p.City,
		&p.State, &p.ZipCode, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *Repository) Create(ctx context.Context, params CreatePropertyParams) (Property, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (account_id, name, building_type, street, city, state, zip_code, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING`+propertyColumns,
		params.AccountID, params.Name, params.BuildingType, params.Street,
		params.City, params.State, params.ZipCode, params.Notes,
	)
	return scanProperty(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Property, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+propertyColumns+` FROM properties WHERE id = $1`, id)
	property, err := scanProperty(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Property{}, ErrNotFound
	}
	return property, err
}

func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+propertyColumns+`
		FROM properties
		WHERE account_id = $1
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, property)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}
