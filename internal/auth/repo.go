package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Repository persists admin accounts in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const adminColumns = `id, u_id, email, name, password, is_active, last_login,
	created_on, updated_on, version, active, archived`

func scanAdmin(row *sql.Row) (*Admin, error) {
	var a Admin
	err := row.Scan(&a.ID, &a.UID, &a.Email, &a.Name, &a.Password, &a.IsActive,
		&a.LastLogin, &a.CreatedOn, &a.UpdatedOn, &a.Version, &a.Active, &a.Archived)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// FindActiveByEmail returns the active, non-archived admin for a normalized
// email, or nil when none exists.
func (r *Repository) FindActiveByEmail(ctx context.Context, email string) (*Admin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+adminColumns+`
		FROM admins WHERE email = $1 AND active AND NOT archived
	`, strings.ToLower(email))
	return scanAdmin(row)
}

// FindActiveByUID returns the active, non-archived admin by uId, or nil.
func (r *Repository) FindActiveByUID(ctx context.Context, uid string) (*Admin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+adminColumns+`
		FROM admins WHERE u_id = $1 AND active AND NOT archived
	`, uid)
	return scanAdmin(row)
}

// Insert writes a new admin record.
func (r *Repository) Insert(ctx context.Context, a Admin) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (id, u_id, email, name, password, is_active, last_login,
			created_on, updated_on, version, active, archived)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, a.ID, a.UID, a.Email, a.Name, a.Password, a.IsActive, a.LastLogin,
		a.CreatedOn, a.UpdatedOn, a.Version, a.Active, a.Archived)
	return err
}

// Update persists mutable fields of an existing record keyed by uId.
func (r *Repository) Update(ctx context.Context, a Admin) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE admins
		SET password = $2, is_active = $3, last_login = $4, updated_on = $5, version = $6
		WHERE u_id = $1
	`, a.UID, a.Password, a.IsActive, a.LastLogin, a.UpdatedOn, a.Version)
	return err
}
