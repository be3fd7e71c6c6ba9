package attendance

import (
	"strings"
	"time"
)

// Employee lunch status lifecycle: Not Scanned -> Attended -> Duplicated.
// The labels are display values and are stored as-is.
const (
	StatusNotScanned = "Not Scanned"
	StatusAttended   = "Attended"
	StatusDuplicated = "Duplicated"
)

// Employee is a lunch-eligibility record keyed by employee id.
type Employee struct {
	EmpID            string `json:"empId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	EligibleForLunch bool   `json:"isEligibleForLunch"`
	Status           string `json:"status"`
}

// ImportRow is one spreadsheet row as read from the upload, prior to any
// interpretation. Column values arrive as strings.
type ImportRow struct {
	EmpID      string
	FirstName  string
	LastName   string
	SelectMenu string
	ScanTime   string
	Status     string
}

// Eligible reports whether the row marks the employee as eligible for lunch:
// the Select Menu column case-insensitively equals "yes".
func (r ImportRow) Eligible() bool {
	return strings.EqualFold(strings.TrimSpace(r.SelectMenu), "yes")
}

// ResolveStatus applies the import state machine to a row. Eligible rows with
// a real scan time (not blank, not the "-" placeholder) are Attended; an
// explicit "duplicate" status marker overrides everything else.
func (r ImportRow) ResolveStatus() string {
	status := StatusNotScanned
	if r.Eligible() {
		if t := strings.TrimSpace(r.ScanTime); t != "" && t != "-" {
			status = StatusAttended
		}
	}
	if strings.EqualFold(strings.TrimSpace(r.Status), "duplicate") {
		status = StatusDuplicated
	}
	return status
}

// Record converts a row into the employee record the upsert writes.
func (r ImportRow) Record() Employee {
	return Employee{
		EmpID:            r.EmpID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		EligibleForLunch: r.Eligible(),
		Status:           r.ResolveStatus(),
	}
}

// AuditRecord is a scan transition logged by the worker.
type AuditRecord struct {
	ID         string    `json:"id"`
	EmpID      string    `json:"empId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
