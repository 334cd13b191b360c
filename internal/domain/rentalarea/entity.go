package rentalarea

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusVacant   Status = "vacant"
	StatusRented   Status = "rented"
	StatusReserved Status = "reserved"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusVacant, StatusRented, StatusReserved:
		return true
	}
	return false
}

// RentalArea is a company-owned plot offered for rent. Names are unique
// within a company.
type RentalArea struct {
	ID          string
	CompanyID   string
	Code        string
	Name        string
	Location    string
	MonthlyRent decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
