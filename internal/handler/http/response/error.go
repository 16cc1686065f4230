package response

import (
	"errors"
	"net/http"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/albapay/albapay-backend-go/internal/domain/user"
	"github.com/albapay/albapay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreNameExists):
		Conflict(w, "Store name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrWageBelowMinimum):
		BadRequest(w, "Hourly wage is below the statutory minimum wage", nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Template domain errors
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Schedule template not found")
	case errors.Is(err, template.ErrInvalidWeekdayKey):
		BadRequest(w, "Schedule data key must be a weekday name", nil)
	case errors.Is(err, template.ErrInvalidShiftTimes):
		BadRequest(w, "Shift times must be HH:mm", nil)

	// Exception domain errors
	case errors.Is(err, exception.ErrExceptionNotFound):
		NotFound(w, "Schedule exception not found")
	case errors.Is(err, exception.ErrInvalidType):
		BadRequest(w, "Invalid exception type", nil)
	case errors.Is(err, exception.ErrMissingTimes):
		BadRequest(w, "Start and end time are required for this exception type", nil)
	case errors.Is(err, exception.ErrInvalidDate):
		BadRequest(w, "Exception date must be YYYY-MM-DD", nil)
	case errors.Is(err, exception.ErrEmployeeNotInStore):
		BadRequest(w, "Employee does not belong to this store", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be HH:mm", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Payroll period is invalid", nil)
	case errors.Is(err, payroll.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, payroll.ErrTemplateNotFound):
		NotFound(w, "Schedule template not found")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
