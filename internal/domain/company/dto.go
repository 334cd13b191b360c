package company

import (
	"strings"

	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
)

type RegisterCompanyRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

func (r *RegisterCompanyRequest) Validate() error {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))

	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "company name is required"})
	}
	if !validator.IsValidCompanyCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be 2-10 characters, A-Z or 0-9"})
	}
	if !validator.IsValidEmail(r.AdminEmail) {
		errs = append(errs, validator.ValidationError{Field: "admin_email", Message: "admin email is not valid"})
	}
	if len(r.AdminPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "admin_password", Message: "password must be at least 8 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name string `json:"name"`
}

func (r UpdateCompanyRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "company name is required"}}
	}
	return nil
}

type CompanyResponse struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	SubscriptionStatus string  `json:"subscription_status"`
	TrialEndsAt        *string `json:"trial_ends_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
}
