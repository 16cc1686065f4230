package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

// payrollWorkers caps the per-employee fan-out. The pipeline is pure
// CPU work, so a small bound is plenty.
const payrollWorkers = 8

type PayrollServiceImpl struct {
	storeRepo     store.StoreRepository
	templateRepo  template.TemplateRepository
	employeeRepo  employee.EmployeeRepository
	exceptionRepo exception.ExceptionRepository
}

func NewPayrollService(
	storeRepo store.StoreRepository,
	templateRepo template.TemplateRepository,
	employeeRepo employee.EmployeeRepository,
	exceptionRepo exception.ExceptionRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		storeRepo:     storeRepo,
		templateRepo:  templateRepo,
		employeeRepo:  employeeRepo,
		exceptionRepo: exceptionRepo,
	}
}

// Helper to get user_id from JWT context
func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *PayrollServiceImpl) CalculateMonthlyPayroll(ctx context.Context, req payroll.CalculateMonthlyPayrollRequest) (payroll.MonthlyPayrollSummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyPayrollSummary{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.MonthlyPayrollSummary{}, err
	}

	// Missing store or template fails the whole run: this is a read-only
	// report, there is nothing partial worth returning.
	if _, err := s.storeRepo.GetByID(ctx, req.StoreID, userID); err != nil {
		return payroll.MonthlyPayrollSummary{}, err
	}
	tpl, err := s.templateRepo.GetByID(ctx, req.TemplateID, req.StoreID)
	if err != nil {
		return payroll.MonthlyPayrollSummary{}, err
	}

	employees, err := s.employeeRepo.GetActiveByStoreID(ctx, req.StoreID)
	if err != nil {
		return payroll.MonthlyPayrollSummary{}, fmt.Errorf("failed to get employees: %w", err)
	}
	exceptions, err := s.exceptionRepo.GetByStoreAndMonth(ctx, req.StoreID, req.Year, req.Month)
	if err != nil {
		return payroll.MonthlyPayrollSummary{}, fmt.Errorf("failed to get exceptions: %w", err)
	}

	// Group per employee, preserving the repository's (date, created_at)
	// order so the resolver's merge is deterministic.
	excByEmployee := make(map[string][]exception.Exception)
	for _, exc := range exceptions {
		excByEmployee[exc.EmployeeID] = append(excByEmployee[exc.EmployeeID], exc)
	}

	calc := NewCalculator(payroll.RatesForYear(req.Year))

	// Each employee's pipeline is independent; compute them in parallel
	// into fixed slots so the output order matches the roster.
	results := make([]payroll.PayrollCalculationResult, len(employees))
	var g errgroup.Group
	g.SetLimit(payrollWorkers)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			result, err := computeEmployeePayroll(calc, tpl, emp, excByEmployee[emp.ID], req.Year, req.Month)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.MonthlyPayrollSummary{}, err
	}

	summary := payroll.MonthlyPayrollSummary{
		StoreID:       req.StoreID,
		TemplateID:    req.TemplateID,
		Year:          req.Year,
		Month:         req.Month,
		Results:       results,
		EmployeeCount: len(results),
		Disclaimer:    payroll.TaxDisclaimer,
	}
	for _, r := range results {
		summary.TotalBasePay += r.MonthlySalary.GrossSalary
		for _, adj := range r.Adjustments {
			summary.TotalExceptionAdjustments += adj.PayDifference
		}
		summary.TotalFinalPay += r.TotalPay
	}

	return summary, nil
}

func (s *PayrollServiceImpl) CalculateEmployeePayroll(ctx context.Context, req payroll.CalculateEmployeePayrollRequest) (payroll.PayrollCalculationResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollCalculationResult{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollCalculationResult{}, err
	}

	if _, err := s.storeRepo.GetByID(ctx, req.StoreID, userID); err != nil {
		return payroll.PayrollCalculationResult{}, err
	}
	tpl, err := s.templateRepo.GetByID(ctx, req.TemplateID, req.StoreID)
	if err != nil {
		return payroll.PayrollCalculationResult{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.StoreID)
	if err != nil {
		return payroll.PayrollCalculationResult{}, err
	}
	exceptions, err := s.exceptionRepo.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.StoreID, req.Year, req.Month)
	if err != nil {
		return payroll.PayrollCalculationResult{}, fmt.Errorf("failed to get exceptions: %w", err)
	}

	calc := NewCalculator(payroll.RatesForYear(req.Year))
	return computeEmployeePayroll(calc, tpl, emp, exceptions, req.Year, req.Month)
}

func (s *PayrollServiceImpl) EstimateSalary(_ context.Context, req payroll.EstimateSalaryRequest) (payroll.SalaryEstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryEstimateResponse{}, err
	}

	calc := NewCalculator(payroll.RatesForYear(time.Now().Year()))

	salary := calc.CalculateMonthlySalary(req.WeeklyHours, req.HourlyWage)
	return payroll.SalaryEstimateResponse{
		MonthlySalary: salary,
		Insurance:     calc.CalculateInsurance(salary.GrossSalary),
		NetSalary:     calc.CalculateNetSalary(salary.GrossSalary, req.Dependents),
		EmployerCost:  calc.CalculateEmployerCost(salary.GrossSalary),
		HolidayPay:    calc.IsEligibleForHolidayPay(req.WeeklyHours),
		Disclaimer:    payroll.TaxDisclaimer,
	}, nil
}

// computeEmployeePayroll runs the straight-line pipeline for one
// employee: base schedule, exceptions, salary, insurance, tax, net.
// Gross comes from the base schedule; exceptions contribute pay deltas
// on top of it.
func computeEmployeePayroll(
	calc *Calculator,
	tpl template.WeeklyTemplate,
	emp employee.Employee,
	exceptions []exception.Exception,
	year, month int,
) (payroll.PayrollCalculationResult, error) {
	base, err := calc.BuildBaseSchedule(tpl, emp, year, month)
	if err != nil {
		return payroll.PayrollCalculationResult{}, err
	}
	final, err := calc.ApplyExceptions(base, exceptions)
	if err != nil {
		return payroll.PayrollCalculationResult{}, err
	}

	salary := calc.CalculateMonthlySalary(base.WeeklyHours, emp.HourlyWage)

	dependents := 1
	if emp.Dependents != nil {
		dependents = *emp.Dependents
	}

	adjustments := calc.CalculateExceptionAdjustments(final, emp.HourlyWage)
	totalPay := salary.GrossSalary
	for _, adj := range adjustments {
		totalPay += adj.PayDifference
	}

	return payroll.PayrollCalculationResult{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		HourlyWage:    emp.HourlyWage,
		BaseSchedule:  base,
		FinalSchedule: final,
		MonthlySalary: salary,
		Insurance:     calc.CalculateInsurance(salary.GrossSalary),
		NetSalary:     calc.CalculateNetSalary(salary.GrossSalary, dependents),
		EmployerCost:  calc.CalculateEmployerCost(salary.GrossSalary),
		Adjustments:   adjustments,
		TotalPay:      totalPay,
	}, nil
}
