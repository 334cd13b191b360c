package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Record is one row per (company, employee, calendar date).
type Record struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
}

// IsBusinessDay reports whether d falls on Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}
