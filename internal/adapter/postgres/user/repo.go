// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, email, display_name, is_admin, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const getCredentialsByEmailSQL = `
SELECT ` + userColumns + `, password_hash
FROM users
WHERE email = $1`

const updateDisplayNameSQL = `
UPDATE users
SET display_name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const isAdminSQL = `
SELECT is_admin FROM users WHERE id = $1`

const setAdminSQL = `
UPDATE users
SET is_admin = $2, updated_at = now()
WHERE email = $1
RETURNING ` + userColumns

const countSQL = `SELECT count(*) FROM users`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user with its bcrypt password hash and returns the
// persisted row. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.DisplayName, passwordHash, u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// UpdateDisplayName sets the display name and returns the updated row.
func (r *Repo) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, updateDisplayNameSQL, id, displayName))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// SetAdmin grants or revokes the admin flag for the user with the given
// email. Only operator tooling calls this; no HTTP route does.
func (r *Repo) SetAdmin(ctx context.Context, email string, isAdmin bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, setAdminSQL, email, isAdmin))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by (already normalised) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// GetCredentialsByEmail returns the user together with the stored password hash.
func (r *Repo) GetCredentialsByEmail(ctx context.Context, email string) (*domain.UserCredentials, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.UserCredentials
	u := &c.User
	err := q.QueryRow(ctx, getCredentialsByEmailSQL, email).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &c.PasswordHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return &c, nil
}

// IsAdmin reads the admin flag of a user. A missing user yields domain.ErrNotFound.
func (r *Repo) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var isAdmin bool
	if err := q.QueryRow(ctx, isAdminSQL, id).Scan(&isAdmin); err != nil {
		return false, postgres.MapError(err, "user", id)
	}

	return isAdmin, nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
