package payroll

import "github.com/shopspring/decimal"

// TaxBracket is one rung of the withholding approximation. A bracket
// applies to gross amounts above Floor; the estimate is
// (gross - Floor) * Rate + Base - dependents * DependentCredit,
// floored at zero.
type TaxBracket struct {
	Floor           int64
	Rate            decimal.Decimal
	Base            int64
	DependentCredit int64
}

// StatutoryRates bundles every rate the payroll engine needs, versioned
// by effective year so annual revisions are data changes, not code
// changes. Long-term care is a surcharge on the health-insurance amount,
// not on gross.
type StatutoryRates struct {
	EffectiveYear int

	NationalPension     decimal.Decimal
	HealthInsurance     decimal.Decimal
	LongTermCare        decimal.Decimal // applied to the health-insurance amount
	EmploymentInsurance decimal.Decimal
	EmploymentStability decimal.Decimal // employer only
	WorkersCompensation decimal.Decimal // employer only, industry-average placeholder

	LocalTaxRate decimal.Decimal
	TaxBrackets  []TaxBracket

	MinimumHourlyWage int64

	// WeeksPerMonth is the fixed 365/7/12 average. It is deliberately
	// calendar-inexact; statement parity depends on it staying 4.345.
	WeeksPerMonth decimal.Decimal
}

// Rates2025 is the 2025 statutory table and the default fixture.
func Rates2025() StatutoryRates {
	return StatutoryRates{
		EffectiveYear: 2025,

		NationalPension:     decimal.NewFromFloat(0.045),
		HealthInsurance:     decimal.NewFromFloat(0.03545),
		LongTermCare:        decimal.NewFromFloat(0.1295),
		EmploymentInsurance: decimal.NewFromFloat(0.009),
		EmploymentStability: decimal.NewFromFloat(0.0025),
		WorkersCompensation: decimal.NewFromFloat(0.007),

		LocalTaxRate: decimal.NewFromFloat(0.10),
		TaxBrackets: []TaxBracket{
			{Floor: 0, Rate: decimal.Zero, Base: 0, DependentCredit: 0},
			{Floor: 1_000_000, Rate: decimal.NewFromFloat(0.06), Base: 0, DependentCredit: 10_000},
			{Floor: 2_000_000, Rate: decimal.NewFromFloat(0.15), Base: 60_000, DependentCredit: 15_000},
			{Floor: 3_000_000, Rate: decimal.NewFromFloat(0.24), Base: 210_000, DependentCredit: 20_000},
		},

		MinimumHourlyWage: 10_030,

		WeeksPerMonth: decimal.NewFromFloat(4.345),
	}
}

var ratesByYear = map[int]func() StatutoryRates{
	2025: Rates2025,
}

// RatesForYear returns the statutory table in effect for the given
// year: the most recent table at or before it. Years predating the
// oldest table on record get that oldest table.
func RatesForYear(year int) StatutoryRates {
	if build, ok := ratesByYear[year]; ok {
		return build()
	}
	best, oldest := 0, 0
	for y := range ratesByYear {
		if oldest == 0 || y < oldest {
			oldest = y
		}
		if y < year && y > best {
			best = y
		}
	}
	if best == 0 {
		best = oldest
	}
	return ratesByYear[best]()
}
