package payroll

import (
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const (
	// Weekly-holiday-pay thresholds under Korean labor law: eligibility
	// at 15 h/week, a full 8-hour credit at the 40 h/week full-time mark.
	holidayPayMinWeeklyHours = 15.0
	fullTimeWeeklyHours      = 40.0
	holidayCreditHours       = 8.0
)

// Calculator evaluates payroll figures under one statutory rate table.
// It carries no other state and is safe for concurrent use.
type Calculator struct {
	rates payroll.StatutoryRates
}

func NewCalculator(rates payroll.StatutoryRates) *Calculator {
	return &Calculator{rates: rates}
}

// IsEligibleForHolidayPay reports whether weekly hours reach the
// statutory weekly-holiday-allowance threshold.
func (c *Calculator) IsEligibleForHolidayPay(weeklyHours float64) bool {
	return weeklyHours >= holidayPayMinWeeklyHours
}

// CalculateHolidayHours returns the weekly paid-holiday credit: zero
// below the threshold, a full 8 hours at or above full time, linearly
// prorated in between.
func (c *Calculator) CalculateHolidayHours(weeklyHours float64) float64 {
	if !c.IsEligibleForHolidayPay(weeklyHours) {
		return 0
	}
	if weeklyHours >= fullTimeWeeklyHours {
		return holidayCreditHours
	}
	return round2(weeklyHours / fullTimeWeeklyHours * holidayCreditHours)
}

// CalculateMonthlySalary expands weekly hours into a monthly gross using
// the fixed 4.345 weeks-per-month average. Total monthly hours are kept
// at one decimal place; gross is rounded to whole won.
func (c *Calculator) CalculateMonthlySalary(weeklyHours float64, hourlyWage int64) payroll.MonthlySalaryResult {
	weeks := c.rates.WeeksPerMonth

	monthlyWorking := decimal.NewFromFloat(weeklyHours).Mul(weeks)
	monthlyHoliday := decimal.NewFromFloat(c.CalculateHolidayHours(weeklyHours)).Mul(weeks)
	totalHours := monthlyWorking.Add(monthlyHoliday).Round(1)

	gross := totalHours.Mul(decimal.NewFromInt(hourlyWage)).Round(0).IntPart()

	return payroll.MonthlySalaryResult{
		GrossSalary:       gross,
		TotalWorkingHours: totalHours.InexactFloat64(),
		HolidayHours:      monthlyHoliday.Round(2).InexactFloat64(),
	}
}

// CalculateNetSalary composes gross minus employee insurance and
// withholding into take-home pay, floored at zero so edge-case inputs
// still produce a displayable figure.
func (c *Calculator) CalculateNetSalary(grossSalary int64, dependents int) payroll.NetSalaryResult {
	insurance := c.CalculateInsurance(grossSalary).Employee.Total
	incomeTax, localTax := c.CalculateIncomeTax(grossSalary, dependents)

	totalDeductions := insurance + incomeTax + localTax
	net := grossSalary - totalDeductions
	if net < 0 {
		net = 0
	}

	return payroll.NetSalaryResult{
		GrossSalary:       grossSalary,
		EmployeeInsurance: insurance,
		IncomeTax:         incomeTax,
		LocalTax:          localTax,
		TotalDeductions:   totalDeductions,
		NetSalary:         net,
	}
}

// CalculateEmployerCost is gross plus the employer insurance burden.
func (c *Calculator) CalculateEmployerCost(grossSalary int64) payroll.EmployerCostResult {
	employer := c.CalculateInsurance(grossSalary).Employer.Total
	return payroll.EmployerCostResult{
		GrossSalary:       grossSalary,
		EmployerInsurance: employer,
		TotalCost:         grossSalary + employer,
	}
}

// wonFromHours converts an hour figure at an hourly wage into whole won.
func wonFromHours(hours float64, hourlyWage int64) int64 {
	return decimal.NewFromFloat(hours).Mul(decimal.NewFromInt(hourlyWage)).Round(0).IntPart()
}
