package auth

import (
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
)

// Identity is the tenant context resolved once per request from the access
// token. Services receive it as an explicit parameter and never read claims
// from ambient state.
type Identity struct {
	UserID     string
	Email      string
	Role       user.Role
	CompanyID  *string // nil for super admins
	EmployeeID *string
}

func (id Identity) IsSuperAdmin() bool {
	return id.Role == user.RoleSuperAdmin
}

// IdentityFromClaims builds an Identity from verified JWT claims.
func IdentityFromClaims(claims map[string]interface{}) (Identity, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(user.Role(roleStr)) {
		return Identity{}, ErrInvalidToken
	}

	ident := Identity{
		UserID: userID,
		Role:   user.Role(roleStr),
	}
	if email, ok := claims["email"].(string); ok {
		ident.Email = email
	}
	if companyID, ok := claims["company_id"].(string); ok && companyID != "" {
		ident.CompanyID = &companyID
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		ident.EmployeeID = &employeeID
	}

	if ident.CompanyID == nil && !ident.IsSuperAdmin() {
		return Identity{}, ErrInvalidToken
	}

	return ident, nil
}
