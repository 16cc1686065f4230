package payroll

import (
	"testing"

	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWorkHours(t *testing.T) {
	cases := []struct {
		name         string
		start, end   string
		breakMinutes int
		total        float64
		regular      float64
		overtime     float64
		night        float64
		nightShift   bool
	}{
		{
			name:  "regular day shift",
			start: "09:00", end: "18:00", breakMinutes: 60,
			total: 8, regular: 8, overtime: 0, night: 0, nightShift: false,
		},
		{
			name:  "overtime split at eight hours",
			start: "08:00", end: "21:00", breakMinutes: 60,
			total: 12, regular: 8, overtime: 4, night: 0, nightShift: false,
		},
		{
			name:  "full night shift across midnight",
			start: "22:00", end: "06:00", breakMinutes: 0,
			total: 8, regular: 8, overtime: 0, night: 8, nightShift: true,
		},
		{
			name:  "late shift touching the night window",
			start: "18:00", end: "23:00", breakMinutes: 0,
			total: 5, regular: 5, overtime: 0, night: 1, nightShift: true,
		},
		{
			name:  "crossing midnight with morning tail outside window",
			start: "23:00", end: "07:00", breakMinutes: 0,
			total: 8, regular: 8, overtime: 0, night: 7, nightShift: true,
		},
		{
			name:  "equal start and end wraps a full day",
			start: "09:00", end: "09:00", breakMinutes: 0,
			total: 24, regular: 8, overtime: 16, night: 8, nightShift: true,
		},
		{
			name:  "half-hour granularity",
			start: "10:15", end: "14:45", breakMinutes: 30,
			total: 4, regular: 4, overtime: 0, night: 0, nightShift: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateWorkHours(tc.start, tc.end, tc.breakMinutes)
			require.NoError(t, err)
			assert.Equal(t, tc.total, got.TotalHours)
			assert.Equal(t, tc.regular, got.RegularHours)
			assert.Equal(t, tc.overtime, got.OvertimeHours)
			assert.Equal(t, tc.night, got.NightHours)
			assert.Equal(t, tc.nightShift, got.IsNightShift)
		})
	}
}

func TestCalculateWorkHoursTotalInvariant(t *testing.T) {
	shifts := [][2]string{
		{"09:00", "18:00"}, {"08:00", "23:30"}, {"22:00", "06:00"}, {"13:15", "02:45"},
	}
	for _, s := range shifts {
		got, err := CalculateWorkHours(s[0], s[1], 45)
		require.NoError(t, err)
		assert.InDelta(t, got.TotalHours, got.RegularHours+got.OvertimeHours, 0.001)
		assert.LessOrEqual(t, got.NightHours, got.TotalHours+0.001)
	}
}

func TestCalculateWorkHoursBreakExceedsShift(t *testing.T) {
	// Oversized breaks are not clamped here; only the exception resolver
	// floors days (CANCEL) at zero.
	got, err := CalculateWorkHours("10:00", "11:00", 120)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got.TotalHours)
	assert.Equal(t, 0.0, got.OvertimeHours)
}

func TestCalculateWorkHoursInvalidInput(t *testing.T) {
	for _, s := range []string{"9:00", "25:00", "12:60", "noon", ""} {
		_, err := CalculateWorkHours(s, "18:00", 0)
		assert.ErrorIs(t, err, payroll.ErrInvalidTimeFormat, "start %q", s)

		_, err = CalculateWorkHours("09:00", s, 0)
		assert.ErrorIs(t, err, payroll.ErrInvalidTimeFormat, "end %q", s)
	}
}
