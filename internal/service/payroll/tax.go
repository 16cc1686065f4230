package payroll

import "github.com/shopspring/decimal"

// CalculateIncomeTax estimates monthly withholding from gross salary and
// dependent count, plus the 10% local income tax on top of it.
//
// This is a bracketed approximation of the statutory simplified tax
// table, kept deliberately: reference statements were produced with
// these brackets, and correcting them would silently change financial
// outputs. payroll.TaxDisclaimer travels with every response.
func (c *Calculator) CalculateIncomeTax(grossSalary int64, dependents int) (incomeTax, localTax int64) {
	if dependents < 1 {
		dependents = 1
	}

	bracket := c.rates.TaxBrackets[0]
	for _, b := range c.rates.TaxBrackets {
		if grossSalary > b.Floor {
			bracket = b
		}
	}

	tax := decimal.NewFromInt(grossSalary - bracket.Floor).
		Mul(bracket.Rate).
		Add(decimal.NewFromInt(bracket.Base)).
		Sub(decimal.NewFromInt(int64(dependents) * bracket.DependentCredit)).
		Round(0).IntPart()
	if tax < 0 {
		tax = 0
	}

	local := decimal.NewFromInt(tax).Mul(c.rates.LocalTaxRate).Round(0).IntPart()
	return tax, local
}
