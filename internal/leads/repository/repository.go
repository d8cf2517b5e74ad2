package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound         = errors.New("lead not found")
	ErrAlreadyConverted = errors.New("lead already converted")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID                 uuid.UUID
	Name               string
	CompanyType        string
	Phone              *string
	Email              *string
	Website            *string
	Street             *string
	City               *string
	State              *string
	ZipCode            *string
	Notes              *string
	Tags               []string
	Status             string
	ConvertedAccountID *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateLeadParams struct {
	Name        string
	CompanyType string
	Phone       *string
	Email       *string
	Website     *string
	Street      *string
	City        *string
	State       *string
	ZipCode     *string
	Notes       *string
	Tags        []string
}

type UpdateLeadParams struct {
	Name        *string
	CompanyType *string
	Phone       *string
	Email       *string
	Website     *string
	Street      *string
	City        *string
	State       *string
	ZipCode     *string
	Notes       *string
	Tags        []string
	Status      *string
}

const leadColumns = `
	id, name, company_type, phone, email, website, street, city, state,
	zip_code, notes, tags, status, converted_account_id, created_at, updated_at`

func scanLead(row pgx.Row) (Lead, error) {
	var l Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.CompanyType, &l.Phone, &l.Email, &l.Website,
		&l.Street, &l.City, &l.State, &l.ZipCode, &l.Notes, &l.Tags,
		&l.Status, &l.ConvertedAccountID, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			name, company_type, phone, email, website, street, city, state,
			zip_code, notes, tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING`+leadColumns,
		params.Name, params.CompanyType, params.Phone, params.Email,
		params.Website, params.Street, params.City, params.State,
		params.ZipCode, params.Notes, tags,
	)
	return scanLead(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+leadColumns+` FROM leads WHERE id = $1`, id)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, params UpdateLeadParams) (Lead, error) {
	sets := make([]string, 0, 12)
	args := make([]interface{}, 0, 13)

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.CompanyType != nil {
		addSet("company_type", *params.CompanyType)
	}
	if params.Phone != nil {
		addSet("phone", *params.Phone)
	}
	if params.Email != nil {
		addSet("email", *params.Email)
	}
	if params.Website != nil {
		addSet("website", *params.Website)
	}
	if params.Street != nil {
		addSet("street", *params.Street)
	}
	if params.City != nil {
		addSet("city", *params.City)
	}
	if params.State != nil {
		addSet("state", *params.State)
	}
	if params.ZipCode != nil {
		addSet("zip_code", *params.ZipCode)
	}
	if params.Notes != nil {
		addSet("notes", *params.Notes)
	}
	if params.Tags != nil {
		addSet("tags", params.Tags)
	}
	if params.Status != nil {
		addSet("status", *params.Status)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE leads SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), leadColumns,
	)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

type ListLeadsParams struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

func (r *Repository) List(ctx context.Context, params ListLeadsParams) ([]Lead, int, error) {
	conds := []string{"TRUE"}
	args := []interface{}{}
	if params.Search != "" {
		args = append(args, "%"+strings.ToLower(params.Search)+"%")
		conds = append(conds, fmt.Sprintf("lower(name) LIKE $%d", len(args)))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM leads WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	args = append(args, params.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM leads WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		leadColumns, where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lead)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}

// Convert marks a lead as converted. accountID is stamped when the lead was
// linked to an existing account; it is nil when the account was created fresh
// and the link is carried on the account side instead.
// Converting an already-converted lead returns ErrAlreadyConverted.
func (r *Repository) Convert(ctx context.Context, id uuid.UUID, accountID *uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads
		SET status = 'Converted', converted_account_id = $2, updated_at = now()
		WHERE id = $1 AND status <> 'Converted'
		RETURNING`+leadColumns,
		id, accountID,
	)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// A missing row here is either an unknown lead or one already
		// converted; look it up to tell the two apart.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return Lead{}, getErr
		}
		return Lead{}, ErrAlreadyConverted
	}
	return lead, err
}
