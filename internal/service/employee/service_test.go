package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	attendanceservice "github.com/allahdad01/construction-erp-go/internal/service/attendance"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID = "11111111-1111-1111-1111-111111111111"
	testUserID    = "22222222-2222-2222-2222-222222222222"
	testEmpID     = "33333333-3333-3333-3333-333333333333"
)

func newServiceWithMock(t *testing.T) (employee.EmployeeService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	db := database.NewWithConn(mock)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	counterRepo := postgresql.NewCounterRepository(db)
	attendanceSvc := attendanceservice.NewAttendanceService(postgresql.NewAttendanceRepository(db), employeeRepo)

	svc := NewEmployeeService(db, employeeRepo, userRepo, companyRepo, counterRepo, attendanceSvc)
	return svc, mock
}

func adminIdentity() auth.Identity {
	companyID := testCompanyID
	return auth.Identity{
		UserID:    "admin-user",
		Role:      user.RoleCompanyAdmin,
		CompanyID: &companyID,
	}
}

func userRow(companyID string) *pgxmock.Rows {
	hash := "$2a$10$hash"
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "company_id", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}).
		AddRow(testUserID, &companyID, "ali@example.com", &hash, user.RoleDriver, true, now, now)
}

func employeeRow(code string, hireDate time.Time) *pgxmock.Rows {
	userID := testUserID
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "company_id", "user_id", "employee_code", "full_name", "phone", "position",
		"monthly_salary", "currency", "hire_date", "status", "created_at", "updated_at",
	}).AddRow(
		testEmpID, testCompanyID, &userID, code, "Ali Rahimi", nil, employee.PositionDriver,
		decimal.NewFromInt(300), "USD", hireDate, employee.StatusActive, now, now,
	)
}

func expectPreamble(mock pgxmock.PgxPoolIface) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`)).
		WithArgs("ali@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM companies WHERE id = $1`)).
		WithArgs(testCompanyID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "code", "name", "subscription_status", "trial_ends_at", "created_at", "updated_at",
		}).AddRow(testCompanyID, "ACME", "Acme Construction", company.StatusActive, nil, now, now))
}

func TestCreateOnboardsEmployee(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	hireDate := today.AddDate(0, 0, -9)

	expectPreamble(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO resource_counters`)).
		WithArgs(testCompanyID, "employee").
		WillReturnRows(pgxmock.NewRows([]string{"last_value"}).AddRow(int64(7)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(pgxmock.AnyArg(), "ali@example.com", pgxmock.AnyArg(), user.RoleDriver, true).
		WillReturnRows(userRow(testCompanyID))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees`)).
		WithArgs(testCompanyID, pgxmock.AnyArg(), "ACME-EMP-007", "Ali Rahimi", pgxmock.AnyArg(),
			employee.PositionDriver, pgxmock.AnyArg(), "USD", pgxmock.AnyArg(), employee.StatusActive).
		WillReturnRows(employeeRow("ACME-EMP-007", hireDate))
	mock.ExpectCommit()

	// One insert per business day between hire date and today, inclusive.
	for d := hireDate; !d.After(today); d = d.AddDate(0, 0, 1) {
		if !attendance.IsBusinessDay(d) {
			continue
		}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO employee_attendance`)).
			WithArgs(testCompanyID, testEmpID, d, attendance.StatusPresent).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	resp, err := svc.Create(context.Background(), adminIdentity(), employee.CreateEmployeeRequest{
		FullName:      "Ali Rahimi",
		Position:      "driver",
		MonthlySalary: "300",
		Currency:      "usd",
		Email:         "ali@example.com",
		HireDate:      hireDate.Format("2006-01-02"),
	})
	require.NoError(t, err)

	assert.Equal(t, "ACME-EMP-007", resp.EmployeeCode)
	assert.Equal(t, "driver", resp.Position)
	assert.Equal(t, "active", resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenEmployeeInsertFails(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	expectPreamble(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO resource_counters`)).
		WithArgs(testCompanyID, "employee").
		WillReturnRows(pgxmock.NewRows([]string{"last_value"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(pgxmock.AnyArg(), "ali@example.com", pgxmock.AnyArg(), user.RoleDriver, true).
		WillReturnRows(userRow(testCompanyID))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees`)).
		WithArgs(testCompanyID, pgxmock.AnyArg(), "ACME-EMP-001", "Ali Rahimi", pgxmock.AnyArg(),
			employee.PositionDriver, pgxmock.AnyArg(), "USD", pgxmock.AnyArg(), employee.StatusActive).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), adminIdentity(), employee.CreateEmployeeRequest{
		FullName:      "Ali Rahimi",
		Position:      "driver",
		MonthlySalary: "300",
		Currency:      "USD",
		Email:         "ali@example.com",
	})
	require.Error(t, err)

	// No commit, no attendance writes: the user row vanishes with the tx.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`)).
		WithArgs("taken@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := svc.Create(context.Background(), adminIdentity(), employee.CreateEmployeeRequest{
		FullName:      "Ali Rahimi",
		Position:      "laborer",
		MonthlySalary: "300",
		Currency:      "USD",
		Email:         "taken@example.com",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsNonAdmin(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	companyID := testCompanyID
	employeeID := testEmpID
	ident := auth.Identity{
		UserID: "user-1", Role: user.RoleAssistant, CompanyID: &companyID, EmployeeID: &employeeID,
	}

	_, err := svc.Create(context.Background(), ident, employee.CreateEmployeeRequest{
		FullName:      "Ali Rahimi",
		Position:      "laborer",
		MonthlySalary: "300",
		Currency:      "USD",
		Email:         "ali@example.com",
	})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestCreateRejectsUnknownPosition(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	_, err := svc.Create(context.Background(), adminIdentity(), employee.CreateEmployeeRequest{
		FullName:      "Ali Rahimi",
		Position:      "astronaut",
		MonthlySalary: "300",
		Currency:      "USD",
		Email:         "ali@example.com",
	})
	require.Error(t, err)
}

func TestDeleteRefusedWhileLedgerRowsExist(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(`)).
		WithArgs(testEmpID, testCompanyID).
		WillReturnRows(pgxmock.NewRows([]string{"has"}).AddRow(true))

	err := svc.Delete(context.Background(), adminIdentity(), testEmpID)
	assert.ErrorIs(t, err, employee.ErrEmployeeHasLedger)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRejectsSelf(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	companyID := testCompanyID
	selfID := testEmpID
	ident := auth.Identity{
		UserID: "admin-user", Role: user.RoleCompanyAdmin, CompanyID: &companyID, EmployeeID: &selfID,
	}

	err := svc.Delete(context.Background(), ident, testEmpID)
	assert.ErrorIs(t, err, employee.ErrCannotDeleteSelf)
}
