package payroll

import "github.com/albapay/albapay-backend-go/internal/domain/exception"

// WorkHoursResult breaks a single shift into its paid-hour components.
// TotalHours = RegularHours + OvertimeHours by construction; NightHours
// counts the overlap with the 22:00-06:00 night window.
type WorkHoursResult struct {
	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`
	IsNightShift  bool    `json:"is_night_shift"`
}

// MonthlySalaryResult projects a weekly-hours figure into a monthly gross.
type MonthlySalaryResult struct {
	GrossSalary       int64   `json:"gross_salary"`
	TotalWorkingHours float64 `json:"total_working_hours"`
	HolidayHours      float64 `json:"holiday_hours"`
}

// EmployeeInsurance holds the four employee-side statutory contributions.
type EmployeeInsurance struct {
	NationalPension     int64 `json:"national_pension"`
	HealthInsurance     int64 `json:"health_insurance"`
	LongTermCare        int64 `json:"long_term_care"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	Total               int64 `json:"total"`
}

// EmployerInsurance holds the employer side: the same four lines plus
// employment stability and workers' compensation.
type EmployerInsurance struct {
	NationalPension     int64 `json:"national_pension"`
	HealthInsurance     int64 `json:"health_insurance"`
	LongTermCare        int64 `json:"long_term_care"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	EmploymentStability int64 `json:"employment_stability"`
	WorkersCompensation int64 `json:"workers_compensation"`
	Total               int64 `json:"total"`
}

type InsuranceResult struct {
	Employee EmployeeInsurance `json:"employee"`
	Employer EmployerInsurance `json:"employer"`
}

type NetSalaryResult struct {
	GrossSalary       int64 `json:"gross_salary"`
	EmployeeInsurance int64 `json:"employee_insurance"`
	IncomeTax         int64 `json:"income_tax"`
	LocalTax          int64 `json:"local_tax"`
	TotalDeductions   int64 `json:"total_deductions"`
	NetSalary         int64 `json:"net_salary"`
}

type EmployerCostResult struct {
	GrossSalary       int64 `json:"gross_salary"`
	EmployerInsurance int64 `json:"employer_insurance"`
	TotalCost         int64 `json:"total_cost"`
}

// DaySchedule is one calendar day of an employee's month. OriginalHours
// keeps the pre-exception value so pay deltas stay auditable.
type DaySchedule struct {
	Date          string          `json:"date"`
	StartTime     *string         `json:"start_time,omitempty"`
	EndTime       *string         `json:"end_time,omitempty"`
	BreakMinutes  int             `json:"break_minutes"`
	WorkHours     float64         `json:"work_hours"`
	HasException  bool            `json:"has_exception"`
	ExceptionType *exception.Type `json:"exception_type,omitempty"`
	OriginalHours *float64        `json:"original_hours,omitempty"`
}

// EmployeeWorkSchedule is a per-employee month of day schedules. The base
// schedule comes straight from the weekly template; the final schedule is
// a deep copy with exceptions applied. The base is never mutated.
type EmployeeWorkSchedule struct {
	EmployeeID   string        `json:"employee_id"`
	HourlyWage   int64         `json:"hourly_wage"`
	Days         []DaySchedule `json:"days"`
	WeeklyHours  float64       `json:"weekly_hours"`
	MonthlyHours float64       `json:"monthly_hours"`
}

// Clone returns a deep copy, pointer fields included, so the final
// schedule never aliases the base.
func (s EmployeeWorkSchedule) Clone() EmployeeWorkSchedule {
	out := s
	out.Days = make([]DaySchedule, len(s.Days))
	for i, d := range s.Days {
		c := d
		if d.StartTime != nil {
			v := *d.StartTime
			c.StartTime = &v
		}
		if d.EndTime != nil {
			v := *d.EndTime
			c.EndTime = &v
		}
		if d.ExceptionType != nil {
			v := *d.ExceptionType
			c.ExceptionType = &v
		}
		if d.OriginalHours != nil {
			v := *d.OriginalHours
			c.OriginalHours = &v
		}
		out.Days[i] = c
	}
	return out
}

// ExceptionAdjustment is the hour and pay delta one excepted day produced.
type ExceptionAdjustment struct {
	Date            string         `json:"date"`
	Type            exception.Type `json:"exception_type"`
	OriginalHours   float64        `json:"original_hours"`
	AdjustedHours   float64        `json:"adjusted_hours"`
	HoursDifference float64        `json:"hours_difference"`
	PayDifference   int64          `json:"pay_difference"`
}

// PayrollCalculationResult is one employee's full monthly payroll.
type PayrollCalculationResult struct {
	EmployeeID    string                `json:"employee_id"`
	EmployeeName  string                `json:"employee_name"`
	HourlyWage    int64                 `json:"hourly_wage"`
	BaseSchedule  EmployeeWorkSchedule  `json:"base_schedule"`
	FinalSchedule EmployeeWorkSchedule  `json:"final_schedule"`
	MonthlySalary MonthlySalaryResult   `json:"monthly_salary"`
	Insurance     InsuranceResult       `json:"insurance"`
	NetSalary     NetSalaryResult       `json:"net_salary"`
	EmployerCost  EmployerCostResult    `json:"employer_cost"`
	Adjustments   []ExceptionAdjustment `json:"adjustments"`
	TotalPay      int64                 `json:"total_pay"`
}

// MonthlyPayrollSummary aggregates every active employee of a store for
// one template and month.
type MonthlyPayrollSummary struct {
	StoreID                   string                     `json:"store_id"`
	TemplateID                string                     `json:"template_id"`
	Year                      int                        `json:"year"`
	Month                     int                        `json:"month"`
	Results                   []PayrollCalculationResult `json:"results"`
	EmployeeCount             int                        `json:"employee_count"`
	TotalBasePay              int64                      `json:"total_base_pay"`
	TotalExceptionAdjustments int64                      `json:"total_exception_adjustments"`
	TotalFinalPay             int64                      `json:"total_final_pay"`
	Disclaimer                string                     `json:"disclaimer"`
}

// TaxDisclaimer accompanies every payroll response. The withholding
// estimate uses a bracketed approximation, not the statutory simplified
// tax table, and must not be treated as filing-grade figures.
const TaxDisclaimer = "income tax is a bracketed estimate, not the statutory simplified tax table"
