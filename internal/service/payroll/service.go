package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/payroll"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
)

// farFuture bounds the open end of lifetime payment sums.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

type PayrollServiceImpl struct {
	paymentRepo    payroll.PaymentRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	paymentRepo payroll.PaymentRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		paymentRepo:    paymentRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Accrual implements payroll.PayrollService. Earned counts present days in
// the asOf month up to asOf; paid is the lifetime payment total, so the
// remaining figure can go negative after an advance.
func (s *PayrollServiceImpl) Accrual(ctx context.Context, ident auth.Identity, employeeID string, asOf time.Time) (payroll.AccrualResponse, error) {
	if ident.Role != user.RoleCompanyAdmin && !ident.IsSuperAdmin() {
		if ident.EmployeeID == nil || *ident.EmployeeID != employeeID {
			return payroll.AccrualResponse{}, auth.ErrResourceNotFound
		}
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return payroll.AccrualResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.AccrualResponse{}, err
	}

	asOf = asOf.UTC().Truncate(24 * time.Hour)
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	daysPresent, err := s.attendanceRepo.CountByStatus(ctx, companyID, employeeID, attendance.StatusPresent, monthStart, asOf)
	if err != nil {
		return payroll.AccrualResponse{}, fmt.Errorf("failed to count present days: %w", err)
	}
	totalRows, err := s.attendanceRepo.CountAll(ctx, companyID, employeeID)
	if err != nil {
		return payroll.AccrualResponse{}, fmt.Errorf("failed to count attendance rows: %w", err)
	}
	presentAllTime, err := s.attendanceRepo.CountPresent(ctx, companyID, employeeID)
	if err != nil {
		return payroll.AccrualResponse{}, fmt.Errorf("failed to count present rows: %w", err)
	}

	totalPaid, err := s.paymentRepo.SumByEmployee(ctx, companyID, employeeID, time.Time{}, farFuture)
	if err != nil {
		return payroll.AccrualResponse{}, fmt.Errorf("failed to sum payments: %w", err)
	}

	earned := payroll.Accrue(emp.MonthlySalary, daysPresent)

	return payroll.AccrualResponse{
		EmployeeID:      employeeID,
		Month:           asOf.Format("2006-01"),
		Currency:        emp.Currency,
		DailyRate:       payroll.DailyRate(emp.MonthlySalary),
		DaysPresent:     daysPresent,
		EarnedThisMonth: earned,
		TotalPaid:       totalPaid,
		Remaining:       earned.Sub(totalPaid),
		AttendanceRate:  payroll.AttendanceRate(presentAllTime, totalRows),
		TotalAttendance: totalRows,
		PresentAllTime:  presentAllTime,
	}, nil
}

// RecordPayment implements payroll.PayrollService.
func (s *PayrollServiceImpl) RecordPayment(ctx context.Context, ident auth.Identity, req payroll.RecordPaymentRequest) (payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return payroll.PaymentResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return payroll.PaymentResponse{}, err
	}

	payment, err := s.paymentRepo.Create(ctx, payroll.SalaryPayment{
		CompanyID:   companyID,
		EmployeeID:  req.EmployeeID,
		Amount:      req.ParsedAmount(),
		PaymentDate: req.ParsedDate(),
	})
	if err != nil {
		return payroll.PaymentResponse{}, fmt.Errorf("failed to record payment: %w", err)
	}

	return payroll.PaymentResponse{
		ID:          payment.ID,
		EmployeeID:  payment.EmployeeID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate.Format("2006-01-02"),
	}, nil
}

// ListPayments implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayments(ctx context.Context, ident auth.Identity, employeeID string) ([]payroll.PaymentResponse, error) {
	if ident.Role != user.RoleCompanyAdmin && !ident.IsSuperAdmin() {
		if ident.EmployeeID == nil || *ident.EmployeeID != employeeID {
			return nil, auth.ErrResourceNotFound
		}
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]payroll.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, payroll.PaymentResponse{
			ID:          payment.ID,
			EmployeeID:  payment.EmployeeID,
			Amount:      payment.Amount,
			PaymentDate: payment.PaymentDate.Format("2006-01-02"),
		})
	}
	return responses, nil
}
