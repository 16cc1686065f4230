package payroll

import (
	"github.com/albapay/albapay-backend-go/internal/pkg/validator"
)

type CalculateMonthlyPayrollRequest struct {
	StoreID    string `json:"-"`
	TemplateID string `json:"template_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *CalculateMonthlyPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{Field: "template_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateEmployeePayrollRequest struct {
	StoreID    string `json:"-"`
	EmployeeID string `json:"-"`
	TemplateID string `json:"template_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *CalculateEmployeePayrollRequest) Validate() error {
	base := CalculateMonthlyPayrollRequest{TemplateID: r.TemplateID, Year: r.Year, Month: r.Month}
	if err := base.Validate(); err != nil {
		return err
	}
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}
	return nil
}

// EstimateSalaryRequest is the standalone salary-calculator input: no
// template, just weekly hours and a wage.
type EstimateSalaryRequest struct {
	WeeklyHours float64 `json:"weekly_hours"`
	HourlyWage  int64   `json:"hourly_wage"`
	Dependents  int     `json:"dependents,omitempty"`
}

func (r *EstimateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WeeklyHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "must be non-negative"})
	}
	if r.HourlyWage <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be positive"})
	}
	if r.Dependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependents", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryEstimateResponse struct {
	MonthlySalary MonthlySalaryResult `json:"monthly_salary"`
	Insurance     InsuranceResult     `json:"insurance"`
	NetSalary     NetSalaryResult     `json:"net_salary"`
	EmployerCost  EmployerCostResult  `json:"employer_cost"`
	HolidayPay    bool                `json:"holiday_pay_eligible"`
	Disclaimer    string              `json:"disclaimer"`
}
