package postgresql

import (
	"context"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/dashboard"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) countScoped(ctx context.Context, query string, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context, companyID string) (int64, error) {
	return r.countScoped(ctx, `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND status = 'active'`, companyID)
}

func (r *dashboardRepositoryImpl) CountMachines(ctx context.Context, companyID string) (int64, error) {
	return r.countScoped(ctx, `SELECT COUNT(*) FROM machines WHERE company_id = $1`, companyID)
}

func (r *dashboardRepositoryImpl) CountRentalAreas(ctx context.Context, companyID string) (int64, error) {
	return r.countScoped(ctx, `SELECT COUNT(*) FROM rental_areas WHERE company_id = $1`, companyID)
}

// SumEarnedBetween implements dashboard.DashboardRepository. Mirrors the
// accrual arithmetic: monthly salary over a fixed 30-day month times present
// days in the range.
func (r *dashboardRepositoryImpl) SumEarnedBetween(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(e.monthly_salary / 30 * p.present_days), 0)
		FROM employees e
		JOIN (
			SELECT employee_id, COUNT(*) AS present_days
			FROM employee_attendance
			WHERE company_id = $1 AND status = 'present' AND attendance_date BETWEEN $2 AND $3
			GROUP BY employee_id
		) p ON p.employee_id = e.id
		WHERE e.company_id = $1 AND e.status = 'active'
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, companyID, from, to).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *dashboardRepositoryImpl) SumPaidBetween(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE company_id = $1 AND payment_date BETWEEN $2 AND $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, companyID, from, to).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
