package company

import (
	"context"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type CompanyService interface {
	// Register creates the company and its admin user as one unit of work.
	Register(ctx context.Context, req RegisterCompanyRequest) (CompanyResponse, error)
	Get(ctx context.Context, ident auth.Identity, companyID string) (CompanyResponse, error)
	Update(ctx context.Context, ident auth.Identity, companyID string, req UpdateCompanyRequest) (CompanyResponse, error)
	List(ctx context.Context, ident auth.Identity) ([]CompanyResponse, error)
	// RequireOperational fails unless the tenant subscription allows writes.
	RequireOperational(ctx context.Context, companyID string) error
}
