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

var ErrNotFound = errors.New("account not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Account struct {
	ID             uuid.UUID
	Name           string
	NameNormalized string
	CompanyType    string
	Phone          *string
	Email          *string
	Website        *string
	Domain         *string
	Street         *string
	City           *string
	State          *string
	ZipCode        *string
	Notes          *string
	SourceLeadID   *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateAccountParams struct {
	Name           string
	NameNormalized string
	CompanyType    string
	Phone          *string
	Email          *string
	Website        *string
	Domain         *string
	Street         *string
	City           *string
	State          *string
	ZipCode        *string
	Notes          *string
	SourceLeadID   *uuid.UUID
}

type UpdateAccountParams struct {
	Name           *string
	NameNormalized *string
	CompanyType    *string
	Phone          *string
	Email          *string
	Website        *string
	Domain         *string
	Street         *string
	City           *string
	State          *string
	ZipCode        *string
	Notes          *string
}

const accountColumns = `
	id, name, name_normalized, company_type, phone, email, website, domain,
	street, city, state, zip_code, notes, source_lead_id, created_at, updated_at`

func scanAccount(row pgx.Row) (Account, error) {
	var a Account
	err := row.Scan(
		&a.ID, &a.Name, &a.NameNormalized, &a.CompanyType, &a.Phone, &a.Email,
		&a.Website, &a.Domain, &a.Street, &a.City, &a.State, &a.ZipCode,
		&a.Notes, &a.SourceLeadID, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *Repository) Create(ctx context.Context, params CreateAccountParams) (Account, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (
			name, name_normalized, company_type, phone, email, website, domain,
			street, city, state, zip_code, notes, source_lead_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING`+accountColumns,
		params.Name, params.NameNormalized, params.CompanyType, params.Phone,
		params.Email, params.Website, params.Domain, params.Street, params.City,
		params.State, params.ZipCode, params.Notes, params.SourceLeadID,
	)
	return scanAccount(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+accountColumns+` FROM accounts WHERE id = $1`, id)
	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return account, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (Account, error) {
	sets := make([]string, 0, 12)
	args := make([]interface{}, 0, 13)

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.NameNormalized != nil {
		addSet("name_normalized", *params.NameNormalized)
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
	if params.Domain != nil {
		addSet("domain", *params.Domain)
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

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE accounts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), accountColumns,
	)

	account, err := scanAccount(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return account, err
}

type ListAccountsParams struct {
	Search   string
	Page     int
	PageSize int
}

func (r *Repository) List(ctx context.Context, params ListAccountsParams) ([]Account, int, error) {
	where := "TRUE"
	args := []interface{}{}
	if params.Search != "" {
		args = append(args, "%"+strings.ToLower(params.Search)+"%")
		where = "name_normalized LIKE $1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM accounts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	args = append(args, params.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM accounts WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		accountColumns, where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, account)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}

// MatchCandidateParams carries the normalized lead attributes used to pull
// possible duplicate accounts. Any single matching signal qualifies a row;
// ranking happens in the service layer.
type MatchCandidateParams struct {
	NameNormalized string
	Domain         string
	Phone          string
	City           string
	State          string
}

func (r *Repository) FindMatchCandidates(ctx context.Context, params MatchCandidateParams) ([]Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+accountColumns+`
		FROM accounts
		WHERE ($1 <> '' AND name_normalized = $1)
		   OR ($2 <> '' AND domain = $2)
		   OR ($3 <> '' AND phone = $3)
		   OR ($1 <> '' AND $4 <> '' AND $5 <> ''
		       AND lower(coalesce(city, '')) = $4
		       AND lower(coalesce(state, '')) = $5
		       AND name_normalized LIKE left($1, 4) || '%')
		LIMIT 25
	`, params.NameNormalized, params.Domain, params.Phone,
		strings.ToLower(params.City), strings.ToLower(params.State))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, account)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}
