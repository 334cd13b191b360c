package machine

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusInUse       Status = "in_use"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

type Machine struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	Model     string
	Status    Status
	DailyRate decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
