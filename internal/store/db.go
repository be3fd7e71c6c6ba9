package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps sql.DB for Postgres using pgx.
type DB struct {
	Client *sql.DB
}

// NewDB creates a Postgres connection with sane defaults and ensures the
// schema exists.
func NewDB(connString string) (*DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	if err := db.PingContext(context.Background()); err != nil {
		return &DB{Client: db}, err
	}
	return &DB{Client: db}, migrate(db)
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		emp_id                TEXT PRIMARY KEY,
		first_name            TEXT NOT NULL DEFAULT '',
		last_name             TEXT NOT NULL DEFAULT '',
		is_eligible_for_lunch BOOLEAN NOT NULL DEFAULT FALSE,
		status                TEXT NOT NULL DEFAULT 'Not Scanned'
	);

	CREATE TABLE IF NOT EXISTS admins (
		id         TEXT PRIMARY KEY,
		u_id       TEXT NOT NULL,
		email      TEXT NOT NULL,
		name       TEXT NOT NULL,
		password   TEXT NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMPTZ,
		created_on TIMESTAMPTZ NOT NULL,
		updated_on TIMESTAMPTZ NOT NULL,
		version    INTEGER NOT NULL DEFAULT 1,
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		archived   BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_active_email
		ON admins(email) WHERE active AND NOT archived;

	CREATE TABLE IF NOT EXISTS scan_audit (
		id          TEXT PRIMARY KEY,
		emp_id      TEXT NOT NULL,
		status      TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scan_audit_emp ON scan_audit(emp_id);
	`
	_, err := db.Exec(schema)
	return err
}

// Healthy verifies database connectivity.
func (d *DB) Healthy(ctx context.Context) bool {
	if d == nil || d.Client == nil {
		return false
	}
	return d.Client.PingContext(ctx) == nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
