package response

import (
	"errors"
	"net/http"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/machine"
	"github.com/allahdad01/construction-erp-go/internal/domain/rentalarea"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/allahdad01/construction-erp-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient role for this operation")
	case errors.Is(err, auth.ErrCompanyScopeRequired):
		BadRequest(w, "Company scope required", nil)
	// Cross-tenant access reads as absence, never as a permission failure.
	case errors.Is(err, auth.ErrResourceNotFound):
		NotFound(w, "Resource not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyCodeExists):
		Conflict(w, "Company code already exists")
	case errors.Is(err, company.ErrSubscriptionExpired):
		PaymentRequired(w, "Company subscription is not active")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeHasLedger):
		Conflict(w, "Employee has attendance or payment records; deactivate instead")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete your own employee record")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Attendance range start is after end", nil)

	// Machine and rental area errors
	case errors.Is(err, machine.ErrMachineNotFound):
		NotFound(w, "Machine not found")
	case errors.Is(err, rentalarea.ErrAreaNotFound):
		NotFound(w, "Rental area not found")
	case errors.Is(err, rentalarea.ErrAreaNameExists):
		Conflict(w, "Rental area name already exists in this company")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
