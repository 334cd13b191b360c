package machine

import (
	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateMachineRequest struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	DailyRate string `json:"daily_rate"`

	dailyRate decimal.Decimal
}

func (r *CreateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "machine name is required"})
	}
	rate, ok := validator.IsPositiveAmount(r.DailyRate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be a positive number"})
	}
	r.dailyRate = rate

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateMachineRequest) ParsedDailyRate() decimal.Decimal { return r.dailyRate }

type UpdateMachineRequest struct {
	Name      *string `json:"name,omitempty"`
	Model     *string `json:"model,omitempty"`
	Status    *string `json:"status,omitempty"`
	DailyRate *string `json:"daily_rate,omitempty"`

	dailyRate *decimal.Decimal
}

func (r *UpdateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "machine name cannot be empty"})
	}
	if r.Status != nil && !ValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown machine status"})
	}
	if r.DailyRate != nil {
		rate, ok := validator.IsPositiveAmount(*r.DailyRate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be a positive number"})
		}
		r.dailyRate = &rate
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateMachineRequest) ParsedDailyRate() *decimal.Decimal { return r.dailyRate }

type MachineResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Model     string          `json:"model,omitempty"`
	Status    string          `json:"status"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	CreatedAt string          `json:"created_at"`
}
