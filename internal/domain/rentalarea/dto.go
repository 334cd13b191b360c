package rentalarea

import (
	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAreaRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	MonthlyRent string `json:"monthly_rent"`

	monthlyRent decimal.Decimal
}

func (r *CreateAreaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "area name is required"})
	}
	rent, ok := validator.IsPositiveAmount(r.MonthlyRent)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "monthly_rent", Message: "monthly rent must be a positive number"})
	}
	r.monthlyRent = rent

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateAreaRequest) ParsedMonthlyRent() decimal.Decimal { return r.monthlyRent }

type UpdateAreaRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Status      *string `json:"status,omitempty"`
	MonthlyRent *string `json:"monthly_rent,omitempty"`

	monthlyRent *decimal.Decimal
}

func (r *UpdateAreaRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "area name cannot be empty"})
	}
	if r.Status != nil && !ValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown area status"})
	}
	if r.MonthlyRent != nil {
		rent, ok := validator.IsPositiveAmount(*r.MonthlyRent)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "monthly_rent", Message: "monthly rent must be a positive number"})
		}
		r.monthlyRent = &rent
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateAreaRequest) ParsedMonthlyRent() *decimal.Decimal { return r.monthlyRent }

type AreaResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Location    string          `json:"location,omitempty"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}
