package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
	}
}

// Backfill implements attendance.AttendanceService. Weekends are skipped and
// dates that already carry a record are left untouched, so re-running the
// same range is a no-op.
func (s *AttendanceServiceImpl) Backfill(ctx context.Context, companyID, employeeID string, from, to time.Time) (attendance.BackfillResult, error) {
	from = from.UTC().Truncate(24 * time.Hour)
	to = to.UTC().Truncate(24 * time.Hour)

	result := attendance.BackfillResult{From: from, To: to}
	if to.Before(from) {
		return result, nil
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !attendance.IsBusinessDay(d) {
			result.Skipped++
			continue
		}
		inserted, err := s.attendanceRepo.CreateIfAbsent(ctx, attendance.Record{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Date:       d,
			Status:     attendance.StatusPresent,
		})
		if err != nil {
			return result, fmt.Errorf("failed to backfill attendance for %s: %w", d.Format("2006-01-02"), err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}

// Mark implements attendance.AttendanceService. An existing record for the
// date is overwritten, so corrections use the same entry point.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, ident auth.Identity, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return attendance.RecordResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// The employee lookup doubles as the tenant check.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.Upsert(ctx, attendance.Record{
		CompanyID:  companyID,
		EmployeeID: req.EmployeeID,
		Date:       req.ParsedDate(),
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}
	return mapRecordToResponse(rec), nil
}

// ListForEmployee implements attendance.AttendanceService. Employees may read
// their own month; admins any employee in their company.
func (s *AttendanceServiceImpl) ListForEmployee(ctx context.Context, ident auth.Identity, employeeID string, month time.Time) ([]attendance.RecordResponse, error) {
	if ident.Role != user.RoleCompanyAdmin && !ident.IsSuperAdmin() {
		if ident.EmployeeID == nil || *ident.EmployeeID != employeeID {
			return nil, auth.ErrResourceNotFound
		}
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return nil, err
	}

	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployee(ctx, companyID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}
