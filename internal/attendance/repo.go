package attendance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// Repository persists employee records in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns every employee record ordered by employee id.
func (r *Repository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT emp_id, first_name, last_name, is_eligible_for_lunch, status
		FROM employees
		ORDER BY emp_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.EmpID, &e.FirstName, &e.LastName, &e.EligibleForLunch, &e.Status); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetByEmpID returns a single employee, or nil when no record exists.
func (r *Repository) GetByEmpID(ctx context.Context, empID string) (*Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT emp_id, first_name, last_name, is_eligible_for_lunch, status
		FROM employees WHERE emp_id = $1
	`, empID)
	var e Employee
	if err := row.Scan(&e.EmpID, &e.FirstName, &e.LastName, &e.EligibleForLunch, &e.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Upsert creates or fully overwrites an employee record keyed by emp_id.
func (r *Repository) Upsert(ctx context.Context, e Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (emp_id, first_name, last_name, is_eligible_for_lunch, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (emp_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			is_eligible_for_lunch = EXCLUDED.is_eligible_for_lunch,
			status = EXCLUDED.status
	`, e.EmpID, e.FirstName, e.LastName, e.EligibleForLunch, e.Status)
	return err
}

// UpdateStatus writes a new status for an employee.
func (r *Repository) UpdateStatus(ctx context.Context, empID, status string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE employees SET status = $2 WHERE emp_id = $1
	`, empID, status)
	return err
}

// InsertAudit records a scan transition for the audit trail.
func (r *Repository) InsertAudit(ctx context.Context, rec AuditRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scan_audit (id, emp_id, status, occurred_at)
		VALUES ($1, $2, $3, $4)
	`, rec.ID, rec.EmpID, rec.Status, rec.OccurredAt)
	return err
}
