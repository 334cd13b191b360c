package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment SalaryPayment) (SalaryPayment, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]SalaryPayment, error)
	// SumByEmployee totals payments with payment_date inside [from, to].
	// Callers wanting the lifetime total pass the zero time and a far future.
	SumByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) (decimal.Decimal, error)
}
