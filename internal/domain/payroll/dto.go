package payroll

import (
	"time"

	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	EmployeeID  string `json:"employee_id"`
	Amount      string `json:"amount"`
	PaymentDate string `json:"payment_date,omitempty"` // defaults to today

	amount      decimal.Decimal
	paymentDate time.Time
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}

	amount, ok := validator.IsPositiveAmount(r.Amount)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive number"})
	}
	r.amount = amount

	if r.PaymentDate == "" {
		r.paymentDate = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		paymentDate, ok := validator.IsValidDate(r.PaymentDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "payment date must be YYYY-MM-DD"})
		}
		r.paymentDate = paymentDate
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RecordPaymentRequest) ParsedAmount() decimal.Decimal { return r.amount }
func (r *RecordPaymentRequest) ParsedDate() time.Time         { return r.paymentDate }

type PaymentResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}

// AccrualResponse is the month-to-date earned versus paid picture for one
// employee. Remaining may be negative when payments exceed the accrual.
type AccrualResponse struct {
	EmployeeID      string          `json:"employee_id"`
	Month           string          `json:"month"` // YYYY-MM
	Currency        string          `json:"currency"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	DaysPresent     int64           `json:"days_present"`
	EarnedThisMonth decimal.Decimal `json:"earned_this_month"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Remaining       decimal.Decimal `json:"remaining"`
	AttendanceRate  float64         `json:"attendance_rate"`
	TotalAttendance int64           `json:"total_attendance_rows"`
	PresentAllTime  int64           `json:"present_all_time"`
}
