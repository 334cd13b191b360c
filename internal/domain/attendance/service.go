package attendance

import (
	"context"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type AttendanceService interface {
	// Backfill writes one "present" record for every business day in
	// [from, to], skipping dates that already have a record. Idempotent.
	Backfill(ctx context.Context, companyID, employeeID string, from, to time.Time) (BackfillResult, error)
	Mark(ctx context.Context, ident auth.Identity, req MarkAttendanceRequest) (RecordResponse, error)
	ListForEmployee(ctx context.Context, ident auth.Identity, employeeID string, month time.Time) ([]RecordResponse, error)
}
