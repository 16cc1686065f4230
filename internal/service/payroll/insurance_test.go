package payroll

import (
	"testing"

	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func TestCalculateInsuranceKnownValues(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	got := calc.CalculateInsurance(1_000_000)

	assert.Equal(t, int64(45_000), got.Employee.NationalPension)
	assert.Equal(t, int64(35_450), got.Employee.HealthInsurance)
	// Long-term care comes off the rounded health amount, not gross:
	// round(35450 * 0.1295) = 4591.
	assert.Equal(t, int64(4_591), got.Employee.LongTermCare)
	assert.Equal(t, int64(9_000), got.Employee.EmploymentInsurance)
	assert.Equal(t, int64(94_041), got.Employee.Total)

	assert.Equal(t, int64(2_500), got.Employer.EmploymentStability)
	assert.Equal(t, int64(7_000), got.Employer.WorkersCompensation)
	assert.Equal(t, int64(103_541), got.Employer.Total)
}

// Totals must be sums of the already-rounded lines, never a re-rounded
// aggregate, across awkward gross values.
func TestCalculateInsuranceTotalInvariant(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	for _, gross := range []int64{0, 1, 999, 123_457, 1_847_331, 2_092_258, 9_999_999} {
		got := calc.CalculateInsurance(gross)

		emp := got.Employee
		assert.Equal(t, emp.NationalPension+emp.HealthInsurance+emp.LongTermCare+emp.EmploymentInsurance,
			emp.Total, "employee total for gross %d", gross)

		er := got.Employer
		assert.Equal(t, er.NationalPension+er.HealthInsurance+er.LongTermCare+
			er.EmploymentInsurance+er.EmploymentStability+er.WorkersCompensation,
			er.Total, "employer total for gross %d", gross)

		assert.GreaterOrEqual(t, emp.NationalPension, int64(0))
		assert.GreaterOrEqual(t, er.Total, emp.Total)
	}
}

func TestCalculateInsuranceZeroGross(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	got := calc.CalculateInsurance(0)

	assert.Equal(t, int64(0), got.Employee.Total)
	assert.Equal(t, int64(0), got.Employer.Total)
}
