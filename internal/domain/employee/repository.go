package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByCode(ctx context.Context, companyID string, employeeCode string) (Employee, error)
	// GetByUserID resolves the employee record behind a login, if any.
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, companyID string, req UpdateEmployeeRequest) error
	SetStatus(ctx context.Context, id string, companyID string, status Status) error
	Delete(ctx context.Context, id string, companyID string) error
	// HasLedgerRows reports whether attendance or payment rows reference the
	// employee; hard deletion is refused while any exist.
	HasLedgerRows(ctx context.Context, id string, companyID string) (bool, error)
	List(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, int64, error)
}
