package payroll

import (
	"testing"

	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func TestCalculateIncomeTaxBrackets(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	cases := []struct {
		name       string
		gross      int64
		dependents int
		wantTax    int64
		wantLocal  int64
	}{
		{"below the taxable floor", 800_000, 1, 0, 0},
		{"exactly one million", 1_000_000, 1, 0, 0},
		{"second bracket", 1_500_000, 1, 20_000, 2_000}, // 500000*0.06 - 10000
		{"top of second bracket", 2_000_000, 1, 50_000, 5_000},
		{"third bracket with two dependents", 2_500_000, 2, 105_000, 10_500}, // 500000*0.15 + 60000 - 30000
		{"fourth bracket", 3_500_000, 1, 310_000, 31_000},                    // 500000*0.24 + 210000 - 20000
		{"dependent credits floor the estimate at zero", 1_050_000, 3, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tax, local := calc.CalculateIncomeTax(tc.gross, tc.dependents)
			assert.Equal(t, tc.wantTax, tax)
			assert.Equal(t, tc.wantLocal, local)
		})
	}
}

func TestCalculateIncomeTaxDefaultsToOneDependent(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	taxZero, _ := calc.CalculateIncomeTax(1_500_000, 0)
	taxOne, _ := calc.CalculateIncomeTax(1_500_000, 1)
	assert.Equal(t, taxOne, taxZero)
}

func TestCalculateIncomeTaxLocalIsTenPercentOfRounded(t *testing.T) {
	calc := NewCalculator(payroll.Rates2025())

	for _, gross := range []int64{1_234_567, 2_345_678, 4_000_001} {
		tax, local := calc.CalculateIncomeTax(gross, 1)
		want := (tax*10 + 50) / 100 // round(tax * 0.10) in integer arithmetic
		assert.Equal(t, want, local, "gross %d", gross)
	}
}
