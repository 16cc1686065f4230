package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/pkg/validator"
)

const (
	minutesPerDay = 24 * 60

	// Hours past regularHoursPerDay in one shift count as overtime.
	regularHoursPerDay = 8.0

	// Statutory night window, in minutes since the shift day's midnight.
	// A shift that wraps past midnight extends into the second window.
	nightWindowStart = 22 * 60 // 22:00
	nightWindowEnd   = 30 * 60 // 06:00 the following day
)

// parseClockMinutes converts an "HH:mm" string to minutes since midnight.
func parseClockMinutes(s string) (int, error) {
	if !validator.IsValidClockTime(s) {
		return 0, fmt.Errorf("%w: %q", payroll.ErrInvalidTimeFormat, s)
	}
	hh, mm, _ := strings.Cut(s, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m, nil
}

// round2 rounds to 2 decimal places, half away from zero. Every hour
// figure leaving this package is rounded so drift cannot accumulate
// across monthly aggregation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateWorkHours splits one shift into total, regular, overtime and
// night hours. An end time at or before the start time means the shift
// crosses midnight.
func CalculateWorkHours(startTime, endTime string, breakMinutes int) (payroll.WorkHoursResult, error) {
	start, err := parseClockMinutes(startTime)
	if err != nil {
		return payroll.WorkHoursResult{}, err
	}
	end, err := parseClockMinutes(endTime)
	if err != nil {
		return payroll.WorkHoursResult{}, err
	}

	if end <= start {
		end += minutesPerDay
	}

	total := float64(end-start-breakMinutes) / 60
	regular := math.Min(total, regularHoursPerDay)
	overtime := math.Max(total-regularHoursPerDay, 0)
	night := float64(nightOverlapMinutes(start, end)) / 60

	result := payroll.WorkHoursResult{
		TotalHours:    round2(total),
		RegularHours:  round2(regular),
		OvertimeHours: round2(overtime),
		NightHours:    round2(night),
	}
	result.IsNightShift = result.NightHours > 0
	return result, nil
}

// nightOverlapMinutes measures how much of [start, end) falls inside the
// night window. The window spans two pieces: 22:00-24:00 of the shift
// day and 00:00-06:00 of the next.
func nightOverlapMinutes(start, end int) int {
	return overlapMinutes(start, end, nightWindowStart, minutesPerDay) +
		overlapMinutes(start, end, minutesPerDay, nightWindowEnd)
}

func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	lo := max(aStart, bStart)
	hi := min(aEnd, bEnd)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
