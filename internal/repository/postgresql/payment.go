package postgresql

import (
	"context"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/payroll"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payroll.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

// Create implements payroll.PaymentRepository. The ledger is append-only;
// there is deliberately no update or delete.
func (r *paymentRepositoryImpl) Create(ctx context.Context, payment payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_payments (company_id, employee_id, amount, payment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, employee_id, amount, payment_date, created_at
	`

	var created payroll.SalaryPayment
	err := q.QueryRow(ctx, query,
		payment.CompanyID, payment.EmployeeID, payment.Amount, payment.PaymentDate,
	).Scan(
		&created.ID, &created.CompanyID, &created.EmployeeID, &created.Amount,
		&created.PaymentDate, &created.CreatedAt,
	)
	if err != nil {
		return payroll.SalaryPayment{}, err
	}
	return created, nil
}

// ListByEmployee implements payroll.PaymentRepository.
func (r *paymentRepositoryImpl) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, amount, payment_date, created_at
		FROM salary_payments
		WHERE company_id = $1 AND employee_id = $2
		ORDER BY payment_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []payroll.SalaryPayment
	for rows.Next() {
		var p payroll.SalaryPayment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.EmployeeID, &p.Amount, &p.PaymentDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SumByEmployee implements payroll.PaymentRepository.
func (r *paymentRepositoryImpl) SumByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_payments
		WHERE company_id = $1 AND employee_id = $2 AND payment_date BETWEEN $3 AND $4
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, companyID, employeeID, from, to).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
