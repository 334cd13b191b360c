package auth

import (
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
)

// Require fails with ErrForbidden unless the identity's role is one of the
// given roles. Super admins pass every role check.
func Require(ident Identity, roles ...user.Role) error {
	if ident.IsSuperAdmin() {
		return nil
	}
	for _, role := range roles {
		if ident.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// RequireCompany fails when the resource belongs to another tenant. The
// failure is ErrResourceNotFound rather than ErrForbidden so an unauthorized
// caller cannot confirm the resource exists.
func RequireCompany(ident Identity, resourceCompanyID string) error {
	if ident.IsSuperAdmin() {
		return nil
	}
	if ident.CompanyID == nil || *ident.CompanyID != resourceCompanyID {
		return ErrResourceNotFound
	}
	return nil
}

// CompanyScope returns the company the identity operates in. Super admins
// acting cross-tenant must name the target company explicitly.
func CompanyScope(ident Identity, targetCompanyID string) (string, error) {
	if ident.IsSuperAdmin() {
		if targetCompanyID != "" {
			return targetCompanyID, nil
		}
		return "", ErrCompanyScopeRequired
	}
	if ident.CompanyID == nil {
		return "", ErrCompanyScopeRequired
	}
	if targetCompanyID != "" && targetCompanyID != *ident.CompanyID {
		return "", ErrResourceNotFound
	}
	return *ident.CompanyID, nil
}
