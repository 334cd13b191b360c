package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CreateIfAbsent implements attendance.AttendanceRepository. The conflict
// target is the (company_id, employee_id, attendance_date) unique index, so
// re-running a backfill over the same range writes nothing.
func (r *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, rec attendance.Record) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_attendance (company_id, employee_id, attendance_date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, employee_id, attendance_date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, rec.CompanyID, rec.EmployeeID, rec.Date, rec.Status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_attendance (company_id, employee_id, attendance_date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, employee_id, attendance_date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id, company_id, employee_id, attendance_date, status, created_at
	`

	var out attendance.Record
	err := q.QueryRow(ctx, query, rec.CompanyID, rec.EmployeeID, rec.Date, rec.Status).Scan(
		&out.ID, &out.CompanyID, &out.EmployeeID, &out.Date, &out.Status, &out.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return out, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, attendance_date, status, created_at
		FROM employee_attendance
		WHERE company_id = $1 AND employee_id = $2 AND attendance_date BETWEEN $3 AND $4
		ORDER BY attendance_date
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, companyID, employeeID string, status attendance.Status, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employee_attendance
		WHERE company_id = $1 AND employee_id = $2 AND status = $3 AND attendance_date BETWEEN $4 AND $5
	`

	var count int64
	if err := q.QueryRow(ctx, query, companyID, employeeID, status, from, to).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountAll(ctx context.Context, companyID, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employee_attendance WHERE company_id = $1 AND employee_id = $2`,
		companyID, employeeID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountPresent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountPresent(ctx context.Context, companyID, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employee_attendance WHERE company_id = $1 AND employee_id = $2 AND status = $3`,
		companyID, employeeID, attendance.StatusPresent,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
