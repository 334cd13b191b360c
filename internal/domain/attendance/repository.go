package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for the
	// same (company, employee, date). Returns true when a row was written.
	CreateIfAbsent(ctx context.Context, rec Record) (bool, error)
	// Upsert overwrites the status for (company, employee, date).
	Upsert(ctx context.Context, rec Record) (Record, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Record, error)
	CountByStatus(ctx context.Context, companyID, employeeID string, status Status, from, to time.Time) (int64, error)
	CountAll(ctx context.Context, companyID, employeeID string) (int64, error)
	CountPresent(ctx context.Context, companyID, employeeID string) (int64, error)
}
