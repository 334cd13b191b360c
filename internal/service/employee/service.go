package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/codes"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/allahdad01/construction-erp-go/internal/pkg/password"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db                *database.DB
	employeeRepo      employee.EmployeeRepository
	userRepo          user.UserRepository
	companyRepo       company.CompanyRepository
	counterRepo       company.CounterRepository
	attendanceService attendance.AttendanceService
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	counterRepo company.CounterRepository,
	attendanceService attendance.AttendanceService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                db,
		employeeRepo:      employeeRepo,
		userRepo:          userRepo,
		companyRepo:       companyRepo,
		counterRepo:       counterRepo,
		attendanceService: attendanceService,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		CompanyID:     emp.CompanyID,
		UserID:        emp.UserID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName,
		Phone:         emp.Phone,
		Position:      string(emp.Position),
		MonthlySalary: emp.MonthlySalary,
		Currency:      emp.Currency,
		HireDate:      emp.HireDate.Format("2006-01-02"),
		Status:        string(emp.Status),
		CreatedAt:     emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Create implements employee.EmployeeService.
//
// The strict phase (code, credentials, user, employee) runs in one
// transaction; the attendance backfill runs after commit and is allowed to
// fail without undoing the onboarding.
func (s *EmployeeServiceImpl) Create(ctx context.Context, ident auth.Identity, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return employee.EmployeeResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	role, ok := employee.RoleForPosition(employee.Position(req.Position))
	if !ok {
		// Validate already rejects unknown positions; re-checked here so the
		// mapping can never fall through to a default role.
		return employee.EmployeeResponse{}, fmt.Errorf("no role mapping for position %q", req.Position)
	}

	// Email is a global uniqueness domain, checked across all tenants.
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, user.ErrEmailExists
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	initialPassword, err := password.Generate()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate initial password: %w", err)
	}
	passwordHash, err := password.Hash(initialPassword)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash initial password: %w", err)
	}

	var createdEmployee employee.Employee

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		seq, err := s.counterRepo.Next(txCtx, companyID, string(codes.ResourceEmployee))
		if err != nil {
			return fmt.Errorf("failed to allocate employee code: %w", err)
		}
		employeeCode := codes.Format(comp.Code, codes.ResourceEmployee, seq)

		newUser, err := s.userRepo.Create(txCtx, user.User{
			CompanyID:    &companyID,
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         role,
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		created, err := s.employeeRepo.Create(txCtx, employee.Employee{
			CompanyID:     companyID,
			UserID:        &newUser.ID,
			EmployeeCode:  employeeCode,
			FullName:      req.FullName,
			Phone:         req.Phone,
			Position:      employee.Position(req.Position),
			MonthlySalary: req.Salary(),
			Currency:      req.Currency,
			HireDate:      req.ParsedHireDate(),
			Status:        employee.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		createdEmployee = created

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Credential delivery to the employee's email happens out of band; the
	// plaintext password leaves scope here.
	firstName, _ := employee.SplitFullName(req.FullName)
	slog.Info("employee onboarded",
		"employee_id", createdEmployee.ID,
		"employee_code", createdEmployee.EmployeeCode,
		"first_name", firstName,
		"company_id", companyID,
	)

	// Best-effort phase: a backfill failure leaves a correctable gap in the
	// ledger, never a failed onboarding.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	result, err := s.attendanceService.Backfill(ctx, companyID, createdEmployee.ID, createdEmployee.HireDate, today)
	if err != nil {
		slog.Warn("attendance backfill failed after onboarding",
			"employee_id", createdEmployee.ID,
			"from", createdEmployee.HireDate.Format("2006-01-02"),
			"to", today.Format("2006-01-02"),
			"error", err,
		)
	} else {
		slog.Info("attendance backfill complete",
			"employee_id", createdEmployee.ID,
			"inserted", result.Inserted,
			"skipped", result.Skipped,
		)
	}

	return mapEmployeeToResponse(createdEmployee), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, ident auth.Identity, id string) (employee.EmployeeResponse, error) {
	// Employees may read their own record; admins any record in their company.
	if ident.Role != user.RoleCompanyAdmin && !ident.IsSuperAdmin() {
		if ident.EmployeeID == nil || *ident.EmployeeID != id {
			return employee.EmployeeResponse{}, auth.ErrResourceNotFound
		}
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, ident auth.Identity, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, companyID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, ident auth.Identity, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return employee.EmployeeResponse{}, err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, id, companyID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, ident auth.Identity, id string) error {
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if emp.Status == employee.StatusInactive {
		return employee.ErrEmployeeAlreadyInactive
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.employeeRepo.SetStatus(txCtx, id, companyID, employee.StatusInactive); err != nil {
			return err
		}
		if emp.UserID != nil {
			if err := s.userRepo.SetActive(txCtx, *emp.UserID, false); err != nil && !errors.Is(err, user.ErrUserNotFound) {
				return err
			}
		}
		return nil
	})
	return err
}

// Delete implements employee.EmployeeService. Hard deletion is refused while
// ledger rows reference the employee; deactivation is the supported path.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, ident auth.Identity, id string) error {
	if err := auth.Require(ident, user.RoleCompanyAdmin); err != nil {
		return err
	}
	companyID, err := auth.CompanyScope(ident, "")
	if err != nil {
		return err
	}

	if ident.EmployeeID != nil && *ident.EmployeeID == id {
		return employee.ErrCannotDeleteSelf
	}

	hasLedger, err := s.employeeRepo.HasLedgerRows(ctx, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to check employee ledger: %w", err)
	}
	if hasLedger {
		return employee.ErrEmployeeHasLedger
	}

	return s.employeeRepo.Delete(ctx, id, companyID)
}
