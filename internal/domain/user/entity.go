package user

import "time"

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"   // Platform operator - may cross tenants
	RoleCompanyAdmin Role = "company_admin" // Company owner - full access within the company
	RoleDriver       Role = "driver"        // Employee operating machines
	RoleAssistant    Role = "assistant"     // Any non-driver employee
	RoleRenter       Role = "renter"        // Rents areas from the company
)

// Roles that belong to an employee record.
func EmployeeRoles() []Role {
	return []Role{RoleDriver, RoleAssistant}
}

type User struct {
	ID           string
	CompanyID    *string // nil only for super admins
	Email        string
	PasswordHash *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin checks if user is the platform operator
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsCompanyAdmin checks if user administers a company
func (u *User) IsCompanyAdmin() bool {
	return u.Role == RoleCompanyAdmin
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleDriver, RoleAssistant, RoleRenter:
		return true
	}
	return false
}
