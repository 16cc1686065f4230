package employee

import "github.com/albapay/albapay-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	StoreID    string  `json:"-"`
	Name       string  `json:"name"`
	HourlyWage int64   `json:"hourly_wage"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Dependents *int    `json:"dependents,omitempty"`
	HiredAt    *string `json:"hired_at,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.HourlyWage <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be positive"})
	}
	if r.Dependents != nil && *r.Dependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependents", Message: "must be non-negative"})
	}
	if r.HiredAt != nil {
		if _, ok := validator.IsValidDate(*r.HiredAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "hired_at", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	Name       *string `json:"name,omitempty"`
	HourlyWage *int64  `json:"hourly_wage,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Dependents *int    `json:"dependents,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	StoreID    string  `json:"store_id"`
	Name       string  `json:"name"`
	HourlyWage int64   `json:"hourly_wage"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Dependents int     `json:"dependents"`
	IsActive   bool    `json:"is_active"`
}
