package exception

import (
	"github.com/albapay/albapay-backend-go/internal/pkg/validator"
)

type CreateExceptionRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Type       string  `json:"exception_type"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "exception_type", Message: "must be CANCEL, OVERRIDE or EXTRA"})
	}

	// CANCEL carries no times; OVERRIDE and EXTRA need a full interval.
	if r.Type == string(TypeOverride) || r.Type == string(TypeExtra) {
		if r.StartTime == nil || !validator.IsValidClockTime(*r.StartTime) {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:mm"})
		}
		if r.EndTime == nil || !validator.IsValidClockTime(*r.EndTime) {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:mm"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExceptionRequest struct {
	ID        string
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type ExceptionResponse struct {
	ID         string  `json:"id"`
	StoreID    string  `json:"store_id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Type       string  `json:"exception_type"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}
