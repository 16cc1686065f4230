package payroll

import "context"

// PayrollService is the read-only payroll engine surface. All operations
// are pure given the persisted inputs and safe to recompute.
type PayrollService interface {
	CalculateMonthlyPayroll(ctx context.Context, req CalculateMonthlyPayrollRequest) (MonthlyPayrollSummary, error)
	CalculateEmployeePayroll(ctx context.Context, req CalculateEmployeePayrollRequest) (PayrollCalculationResult, error)
	EstimateSalary(ctx context.Context, req EstimateSalaryRequest) (SalaryEstimateResponse, error)
}
