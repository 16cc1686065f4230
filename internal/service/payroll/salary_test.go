package payroll

import (
	"testing"

	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsEligibleForHolidayPay(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	assert.False(t, calc.IsEligibleForHolidayPay(14.99))
	assert.True(t, calc.IsEligibleForHolidayPay(15))
	assert.True(t, calc.IsEligibleForHolidayPay(40))
	assert.False(t, calc.IsEligibleForHolidayPay(0))
}

func TestCalculateHolidayHours(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	cases := []struct {
		weekly float64
		want   float64
	}{
		{10, 0},     // below the 15h threshold
		{14.99, 0},  // still below
		{15, 3},     // (15/40)*8
		{20, 4},     // (20/40)*8
		{30, 6},     // (30/40)*8
		{40, 8},     // full-time cap
		{52, 8},     // capped above full time
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, calc.CalculateHolidayHours(tc.weekly), "weekly %.2f", tc.weekly)
	}
}

// Locks the regression value for a full-time minimum-wage employee:
// 40h/week at 10,030 won must always come out to 2,092,258 won gross.
func TestCalculateMonthlySalaryRegression(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	got := calc.CalculateMonthlySalary(40, 10030)

	assert.Equal(t, 34.76, got.HolidayHours)
	assert.Equal(t, 208.6, got.TotalWorkingHours)
	assert.Equal(t, int64(2_092_258), got.GrossSalary)
}

func TestCalculateMonthlySalaryBelowThreshold(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	// 10h/week earns no holiday credit at all.
	got := calc.CalculateMonthlySalary(10, 10030)

	assert.Equal(t, 0.0, got.HolidayHours)
	assert.Equal(t, 43.5, got.TotalWorkingHours) // 10 * 4.345 rounded to 1dp
	assert.Equal(t, int64(436_305), got.GrossSalary)
}

func TestCalculateNetSalary(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	got := calc.CalculateNetSalary(2_092_258, 1)

	ins := calc.CalculateInsurance(2_092_258).Employee.Total
	tax, local := calc.CalculateIncomeTax(2_092_258, 1)
	assert.Equal(t, ins, got.EmployeeInsurance)
	assert.Equal(t, tax, got.IncomeTax)
	assert.Equal(t, local, got.LocalTax)
	assert.Equal(t, ins+tax+local, got.TotalDeductions)
	assert.Equal(t, got.GrossSalary-got.TotalDeductions, got.NetSalary)
	assert.Greater(t, got.NetSalary, int64(0))
}

func TestCalculateNetSalaryFloorsAtZero(t *testing.T) {
	// Statutory 2025 rates can never push net below zero, so force the
	// clamp with a pathological injected table.
	rates := payroll.Rates2025()
	rates.NationalPension = decimal.NewFromFloat(1.5)
	calc := NewCalculator(rates)

	got := calc.CalculateNetSalary(100_000, 1)

	assert.Equal(t, int64(0), got.NetSalary)
	assert.Greater(t, got.TotalDeductions, got.GrossSalary)
}

func TestCalculateEmployerCost(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	got := calc.CalculateEmployerCost(2_000_000)

	employer := calc.CalculateInsurance(2_000_000).Employer.Total
	assert.Equal(t, employer, got.EmployerInsurance)
	assert.Equal(t, int64(2_000_000)+employer, got.TotalCost)
}
