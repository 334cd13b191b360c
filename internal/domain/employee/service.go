package employee

import (
	"context"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type EmployeeService interface {
	// Create runs the onboarding transaction: code generation, credential
	// issuance and the employee insert are atomic; the attendance backfill
	// that follows is best-effort.
	Create(ctx context.Context, ident auth.Identity, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, ident auth.Identity, id string) (EmployeeResponse, error)
	List(ctx context.Context, ident auth.Identity, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, ident auth.Identity, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, ident auth.Identity, id string) error
	Delete(ctx context.Context, ident auth.Identity, id string) error
}
