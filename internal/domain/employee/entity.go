package employee

import (
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	CompanyID     string
	UserID        *string // weak reference: employee may outlive its user
	EmployeeCode  string
	FullName      string
	Phone         *string
	Position      Position
	MonthlySalary decimal.Decimal
	Currency      string
	HireDate      time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Position is a closed enum. Unknown positions are rejected at validation
// time so a new position can never silently fall through to a default role.
type Position string

const (
	PositionDriver   Position = "driver"
	PositionOperator Position = "operator"
	PositionLaborer  Position = "laborer"
	PositionForeman  Position = "foreman"
	PositionEngineer Position = "engineer"
)

func ValidPosition(p Position) bool {
	switch p {
	case PositionDriver, PositionOperator, PositionLaborer, PositionForeman, PositionEngineer:
		return true
	}
	return false
}

// RoleForPosition maps a position to the credential role issued at
// onboarding. Drivers get the driver role, every other position the
// assistant role.
func RoleForPosition(p Position) (user.Role, bool) {
	switch p {
	case PositionDriver:
		return user.RoleDriver, true
	case PositionOperator, PositionLaborer, PositionForeman, PositionEngineer:
		return user.RoleAssistant, true
	default:
		return "", false
	}
}

// SplitFullName splits at the first space; a single-word name has an empty
// last name.
func SplitFullName(fullName string) (first, last string) {
	for i, r := range fullName {
		if r == ' ' {
			return fullName[:i], fullName[i+1:]
		}
	}
	return fullName, ""
}
