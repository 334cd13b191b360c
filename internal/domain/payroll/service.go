package payroll

import (
	"context"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type PayrollService interface {
	// Accrual is a pure read over stored attendance and payment rows; safe
	// to call repeatedly and concurrently.
	Accrual(ctx context.Context, ident auth.Identity, employeeID string, asOf time.Time) (AccrualResponse, error)
	RecordPayment(ctx context.Context, ident auth.Identity, req RecordPaymentRequest) (PaymentResponse, error)
	ListPayments(ctx context.Context, ident auth.Identity, employeeID string) ([]PaymentResponse, error)
}
