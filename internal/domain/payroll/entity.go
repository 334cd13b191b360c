package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment is one row of the append-only disbursement ledger. Past
// payments are never mutated, only summed.
type SalaryPayment struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	Amount      decimal.Decimal
	PaymentDate time.Time
	CreatedAt   time.Time
}

// Salaries accrue against a fixed 30-day month regardless of calendar length.
var daysPerMonth = decimal.NewFromInt(30)

// DailyRate derives the per-day rate from a monthly salary.
func DailyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Div(daysPerMonth)
}

// Accrue computes the amount earned for a number of present days.
func Accrue(monthlySalary decimal.Decimal, daysPresent int64) decimal.Decimal {
	return DailyRate(monthlySalary).Mul(decimal.NewFromInt(daysPresent))
}

// AttendanceRate is the share of present rows among all attendance rows, in
// percent. A zero denominator is treated as 1 so the figure stays defined.
func AttendanceRate(presentRows, totalRows int64) float64 {
	if totalRows == 0 {
		totalRows = 1
	}
	return float64(presentRows) / float64(totalRows) * 100
}
