package payroll

import (
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// CalculateInsurance computes the four major social-insurance
// contributions for both sides. Each line is rounded to whole won
// independently and the totals are sums of the rounded lines; statement
// parity depends on never re-rounding the aggregate.
func (c *Calculator) CalculateInsurance(grossSalary int64) payroll.InsuranceResult {
	gross := decimal.NewFromInt(grossSalary)

	pension := rateOf(gross, c.rates.NationalPension)
	health := rateOf(gross, c.rates.HealthInsurance)
	// Long-term care is a surcharge on the health amount, not on gross.
	longTermCare := rateOf(decimal.NewFromInt(health), c.rates.LongTermCare)
	employment := rateOf(gross, c.rates.EmploymentInsurance)

	emp := payroll.EmployeeInsurance{
		NationalPension:     pension,
		HealthInsurance:     health,
		LongTermCare:        longTermCare,
		EmploymentInsurance: employment,
	}
	emp.Total = emp.NationalPension + emp.HealthInsurance + emp.LongTermCare + emp.EmploymentInsurance

	er := payroll.EmployerInsurance{
		NationalPension:     pension,
		HealthInsurance:     health,
		LongTermCare:        longTermCare,
		EmploymentInsurance: employment,
		EmploymentStability: rateOf(gross, c.rates.EmploymentStability),
		WorkersCompensation: rateOf(gross, c.rates.WorkersCompensation),
	}
	er.Total = er.NationalPension + er.HealthInsurance + er.LongTermCare +
		er.EmploymentInsurance + er.EmploymentStability + er.WorkersCompensation

	return payroll.InsuranceResult{Employee: emp, Employer: er}
}

func rateOf(amount, rate decimal.Decimal) int64 {
	return amount.Mul(rate).Round(0).IntPart()
}
