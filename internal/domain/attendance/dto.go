package attendance

import (
	"time"

	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`

	date time.Time
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	r.date = date
	if !ValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, absent or leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *MarkAttendanceRequest) ParsedDate() time.Time { return r.date }

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// BackfillResult reports what the backfill covered.
type BackfillResult struct {
	From     time.Time
	To       time.Time
	Inserted int
	Skipped  int // weekend days plus dates that already had a record
}
