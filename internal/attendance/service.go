package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lunchscan/internal/apperr"
	"lunchscan/internal/metrics"
	"lunchscan/internal/queue"
)

// Store is the persistence surface the service needs.
type Store interface {
	List(ctx context.Context) ([]Employee, error)
	GetByEmpID(ctx context.Context, empID string) (*Employee, error)
	Upsert(ctx context.Context, e Employee) error
	UpdateStatus(ctx context.Context, empID, status string) error
}

// Service coordinates employee imports and scan transitions.
type Service struct {
	store Store
	q     queue.Queue
}

// NewService creates a service backed by a store. The queue may be nil when
// audit publishing is disabled.
func NewService(store Store, q queue.Queue) *Service {
	return &Service{store: store, q: q}
}

// ScanResult reports a successful transition.
type ScanResult struct {
	Message string
}

// Scan applies one scan event to an employee. First scan moves Not Scanned to
// Attended; the second scan still succeeds but flips the record to Duplicated;
// every scan after that is a conflict. The read-then-write pair is not wrapped
// in a transaction, so two concurrent scans of the same employee can both
// observe Not Scanned and both land on Attended.
func (s *Service) Scan(ctx context.Context, empID string) (*ScanResult, error) {
	if empID == "" {
		return nil, apperr.BadRequest("empId is required")
	}

	emp, err := s.store.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		metrics.ScansTotal.WithLabelValues("not_found").Inc()
		return nil, apperr.NotFound("User not found")
	}
	if !emp.EligibleForLunch {
		metrics.ScansTotal.WithLabelValues("forbidden").Inc()
		return nil, apperr.Forbidden("User is not eligible for lunch")
	}

	switch emp.Status {
	case StatusAttended:
		if err := s.store.UpdateStatus(ctx, empID, StatusDuplicated); err != nil {
			return nil, err
		}
		metrics.ScansTotal.WithLabelValues("duplicated").Inc()
		s.publishAudit(ctx, empID, StatusDuplicated)
		return &ScanResult{Message: "User has already attended. Marked as Duplicated."}, nil

	case StatusDuplicated:
		metrics.ScansTotal.WithLabelValues("conflict").Inc()
		return nil, apperr.Conflict("User has already attended. Marked as Duplicated.")

	default:
		if err := s.store.UpdateStatus(ctx, empID, StatusAttended); err != nil {
			return nil, err
		}
		metrics.ScansTotal.WithLabelValues("attended").Inc()
		s.publishAudit(ctx, empID, StatusAttended)
		return &ScanResult{Message: "User status updated to Attended"}, nil
	}
}

// Import upserts one record per spreadsheet row, sequentially. Rows committed
// before a failure stay committed; partial import is the expected failure mode.
func (s *Service) Import(ctx context.Context, rows []ImportRow) (int, error) {
	imported := 0
	for _, row := range rows {
		if err := s.store.Upsert(ctx, row.Record()); err != nil {
			return imported, err
		}
		imported++
		metrics.ImportedRowsTotal.Inc()
	}
	return imported, nil
}

// ListAll returns every record, defaulting a blank status to Not Scanned for
// display.
func (s *Service) ListAll(ctx context.Context) ([]Employee, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].Status == "" {
			employees[i].Status = StatusNotScanned
		}
	}
	return employees, nil
}

func (s *Service) publishAudit(ctx context.Context, empID, status string) {
	if s.q == nil {
		return
	}
	body, err := json.Marshal(AuditRecord{
		EmpID:      empID,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return
	}
	if err := s.q.Publish(ctx, queue.Message{Type: "scan", Body: body}); err != nil {
		log.Printf("audit publish failed for %s: %v", empID, err)
	}
}

// DecodeAudit parses a queue message body back into an audit record.
func DecodeAudit(body []byte) (AuditRecord, error) {
	var rec AuditRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return AuditRecord{}, fmt.Errorf("decode audit record: %w", err)
	}
	return rec, nil
}
