package employee

import (
	"strings"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName      string  `json:"full_name"`
	Position      string  `json:"position"`
	MonthlySalary string  `json:"monthly_salary"`
	Currency      string  `json:"currency"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	HireDate      string  `json:"hire_date,omitempty"` // defaults to today

	// Populated by Validate
	salary   decimal.Decimal
	hireDate time.Time
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if !ValidPosition(Position(r.Position)) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "unknown position"})
	}

	salary, ok := validator.IsPositiveAmount(r.MonthlySalary)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly salary must be a positive number"})
	}
	r.salary = salary

	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency must be a 3-letter code"})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}

	if r.HireDate == "" {
		r.hireDate = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		hireDate, ok := validator.IsValidDate(r.HireDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date must be YYYY-MM-DD"})
		}
		r.hireDate = hireDate
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Salary returns the parsed monthly salary; valid only after Validate.
func (r *CreateEmployeeRequest) Salary() decimal.Decimal { return r.salary }

// ParsedHireDate returns the hire date; valid only after Validate.
func (r *CreateEmployeeRequest) ParsedHireDate() time.Time { return r.hireDate }

type UpdateEmployeeRequest struct {
	FullName      *string `json:"full_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Position      *string `json:"position,omitempty"`
	MonthlySalary *string `json:"monthly_salary,omitempty"`
	Currency      *string `json:"currency,omitempty"`

	salary *decimal.Decimal
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name cannot be empty"})
	}
	if r.Position != nil && !ValidPosition(Position(*r.Position)) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "unknown position"})
	}
	if r.MonthlySalary != nil {
		salary, ok := validator.IsPositiveAmount(*r.MonthlySalary)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly salary must be a positive number"})
		}
		r.salary = &salary
	}
	if r.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*r.Currency))
		if !validator.IsValidCurrency(currency) {
			errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency must be a 3-letter code"})
		}
		r.Currency = &currency
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateEmployeeRequest) ParsedSalary() *decimal.Decimal { return r.salary }

type EmployeeFilter struct {
	Status string
	Page   int
	Limit  int
}

func (f *EmployeeFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Status != "" && f.Status != string(StatusActive) && f.Status != string(StatusInactive) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be active or inactive"}}
	}
	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	UserID        *string         `json:"user_id,omitempty"`
	EmployeeCode  string          `json:"employee_code"`
	FullName      string          `json:"full_name"`
	Phone         *string         `json:"phone,omitempty"`
	Position      string          `json:"position"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Currency      string          `json:"currency"`
	HireDate      string          `json:"hire_date"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
