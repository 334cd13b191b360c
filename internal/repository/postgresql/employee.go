package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, company_id, user_id, employee_code, full_name, phone, position,
		monthly_salary, currency, hire_date, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.UserID, &emp.EmployeeCode, &emp.FullName, &emp.Phone, &emp.Position,
		&emp.MonthlySalary, &emp.Currency, &emp.HireDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND company_id = $2`
	return scanEmployee(q.QueryRow(ctx, query, id, companyID))
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, companyID string, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1 AND company_id = $2`
	return scanEmployee(q.QueryRow(ctx, query, employeeCode, companyID))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			company_id, user_id, employee_code, full_name, phone, position,
			monthly_salary, currency, hire_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.UserID, newEmployee.EmployeeCode, newEmployee.FullName,
		newEmployee.Phone, newEmployee.Position, newEmployee.MonthlySalary, newEmployee.Currency,
		newEmployee.HireDate, newEmployee.Status,
	))
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, companyID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = COALESCE($1, full_name),
			phone = COALESCE($2, phone),
			position = COALESCE($3, position),
			monthly_salary = COALESCE($4, monthly_salary),
			currency = COALESCE($5, currency),
			updated_at = NOW()
		WHERE id = $6 AND company_id = $7
	`

	tag, err := q.Exec(ctx, query, req.FullName, req.Phone, req.Position, req.ParsedSalary(), req.Currency, id, companyID)
	if err != nil {
		return fmt.Errorf("update employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetStatus(ctx context.Context, id string, companyID string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
		status, id, companyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// HasLedgerRows implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) HasLedgerRows(ctx context.Context, id string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employee_attendance WHERE employee_id = $1 AND company_id = $2
		) OR EXISTS(
			SELECT 1 FROM salary_payments WHERE employee_id = $1 AND company_id = $2
		)
	`

	var has bool
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&has); err != nil {
		return false, err
	}
	return has, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, companyID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND ($2 = '' OR status = $2)`
	if err := q.QueryRow(ctx, countQuery, companyID, filter.Status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY employee_code
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, companyID, filter.Status, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.UserID, &emp.EmployeeCode, &emp.FullName, &emp.Phone, &emp.Position,
			&emp.MonthlySalary, &emp.Currency, &emp.HireDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	return employees, total, rows.Err()
}
