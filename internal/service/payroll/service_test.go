package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/payroll"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments []payroll.SalaryPayment
}

func (f *fakePaymentRepo) Create(_ context.Context, p payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	p.ID = "pay-1"
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentRepo) ListByEmployee(_ context.Context, companyID, employeeID string) ([]payroll.SalaryPayment, error) {
	var out []payroll.SalaryPayment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) SumByEmployee(_ context.Context, companyID, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.EmployeeID == employeeID &&
			!p.PaymentDate.Before(from) && !p.PaymentDate.After(to) {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

// fakeCountRepo serves the attendance counts the accrual reads.
type fakeCountRepo struct {
	attendance.AttendanceRepository

	presentInMonth int64
	presentAllTime int64
	totalRows      int64
}

func (f *fakeCountRepo) CountByStatus(_ context.Context, _, _ string, _ attendance.Status, _, _ time.Time) (int64, error) {
	return f.presentInMonth, nil
}

func (f *fakeCountRepo) CountAll(_ context.Context, _, _ string) (int64, error) {
	return f.totalRows, nil
}

func (f *fakeCountRepo) CountPresent(_ context.Context, _, _ string) (int64, error) {
	return f.presentAllTime, nil
}

type fakeEmployeeGetter struct {
	employee.EmployeeRepository

	emp employee.Employee
}

func (f *fakeEmployeeGetter) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	if f.emp.ID != id || f.emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func adminIdentity(companyID string) auth.Identity {
	return auth.Identity{
		UserID:    "user-admin",
		Role:      user.RoleCompanyAdmin,
		CompanyID: &companyID,
	}
}

func TestAccrualEarnedVersusPaid(t *testing.T) {
	// Salary 300 over a 30-day month: daily rate 10. Ten present days earn
	// 100; 80 already paid leaves 20.
	payments := &fakePaymentRepo{payments: []payroll.SalaryPayment{
		{CompanyID: "comp-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(50), PaymentDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{CompanyID: "comp-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(30), PaymentDate: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)},
	}}
	counts := &fakeCountRepo{presentInMonth: 10, presentAllTime: 40, totalRows: 50}
	employees := &fakeEmployeeGetter{emp: employee.Employee{
		ID: "emp-1", CompanyID: "comp-1", MonthlySalary: decimal.NewFromInt(300), Currency: "USD",
	}}

	svc := NewPayrollService(payments, counts, employees)

	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Accrual(context.Background(), adminIdentity("comp-1"), "emp-1", asOf)
	require.NoError(t, err)

	assert.True(t, resp.DailyRate.Equal(decimal.NewFromInt(10)), "daily rate %s", resp.DailyRate)
	assert.Equal(t, int64(10), resp.DaysPresent)
	assert.True(t, resp.EarnedThisMonth.Equal(decimal.NewFromInt(100)), "earned %s", resp.EarnedThisMonth)
	assert.True(t, resp.TotalPaid.Equal(decimal.NewFromInt(80)), "paid %s", resp.TotalPaid)
	assert.True(t, resp.Remaining.Equal(decimal.NewFromInt(20)), "remaining %s", resp.Remaining)
	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, "USD", resp.Currency)
	assert.InDelta(t, 80.0, resp.AttendanceRate, 0.001)
}

func TestAccrualRemainingCanGoNegative(t *testing.T) {
	// An advance larger than the accrual leaves a negative remainder.
	payments := &fakePaymentRepo{payments: []payroll.SalaryPayment{
		{CompanyID: "comp-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(500), PaymentDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}}
	counts := &fakeCountRepo{presentInMonth: 10, presentAllTime: 10, totalRows: 10}
	employees := &fakeEmployeeGetter{emp: employee.Employee{
		ID: "emp-1", CompanyID: "comp-1", MonthlySalary: decimal.NewFromInt(300), Currency: "USD",
	}}

	svc := NewPayrollService(payments, counts, employees)

	resp, err := svc.Accrual(context.Background(), adminIdentity("comp-1"), "emp-1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, resp.Remaining.Equal(decimal.NewFromInt(-400)), "remaining %s", resp.Remaining)
}

func TestAccrualNoAttendanceRows(t *testing.T) {
	payments := &fakePaymentRepo{}
	counts := &fakeCountRepo{}
	employees := &fakeEmployeeGetter{emp: employee.Employee{
		ID: "emp-1", CompanyID: "comp-1", MonthlySalary: decimal.NewFromInt(300), Currency: "USD",
	}}

	svc := NewPayrollService(payments, counts, employees)

	resp, err := svc.Accrual(context.Background(), adminIdentity("comp-1"), "emp-1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, resp.EarnedThisMonth.IsZero())
	assert.Equal(t, 0.0, resp.AttendanceRate)
}

func TestAccrualSelfAccessOnly(t *testing.T) {
	employees := &fakeEmployeeGetter{emp: employee.Employee{
		ID: "emp-1", CompanyID: "comp-1", MonthlySalary: decimal.NewFromInt(300),
	}}
	svc := NewPayrollService(&fakePaymentRepo{}, &fakeCountRepo{}, employees)

	companyID := "comp-1"
	selfID := "emp-1"
	ident := auth.Identity{
		UserID: "user-1", Role: user.RoleDriver, CompanyID: &companyID, EmployeeID: &selfID,
	}

	_, err := svc.Accrual(context.Background(), ident, "emp-1", time.Now())
	require.NoError(t, err)

	_, err = svc.Accrual(context.Background(), ident, "emp-2", time.Now())
	assert.ErrorIs(t, err, auth.ErrResourceNotFound)
}

func TestRecordPaymentValidatesEmployee(t *testing.T) {
	payments := &fakePaymentRepo{}
	employees := &fakeEmployeeGetter{emp: employee.Employee{ID: "emp-1", CompanyID: "comp-1"}}
	svc := NewPayrollService(payments, &fakeCountRepo{}, employees)

	ident := adminIdentity("comp-1")

	resp, err := svc.RecordPayment(context.Background(), ident, payroll.RecordPaymentRequest{
		EmployeeID: "emp-1", Amount: "120.50", PaymentDate: "2024-03-10",
	})
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, "2024-03-10", resp.PaymentDate)

	_, err = svc.RecordPayment(context.Background(), ident, payroll.RecordPaymentRequest{
		EmployeeID: "emp-unknown", Amount: "10",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewPayrollService(&fakePaymentRepo{}, &fakeCountRepo{}, &fakeEmployeeGetter{})

	_, err := svc.RecordPayment(context.Background(), adminIdentity("comp-1"), payroll.RecordPaymentRequest{
		EmployeeID: "emp-1", Amount: "-10",
	})
	assert.Error(t, err)
}
