package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/shopspring/decimal"
)

// BuildBaseSchedule expands the weekly template into one DaySchedule per
// calendar day of the month for a single employee. Days the store is
// closed or the employee is not rostered carry zero hours.
func (c *Calculator) BuildBaseSchedule(tpl template.WeeklyTemplate, emp employee.Employee, year, month int) (payroll.EmployeeWorkSchedule, error) {
	if month < 1 || month > 12 {
		return payroll.EmployeeWorkSchedule{}, payroll.ErrInvalidPeriod
	}

	sched := payroll.EmployeeWorkSchedule{
		EmployeeID: emp.ID,
		HourlyWage: emp.HourlyWage,
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		day := payroll.DaySchedule{Date: d.Format("2006-01-02")}

		weekday := strings.ToLower(d.Weekday().String())
		if dayTpl, ok := tpl.ScheduleData[weekday]; ok && dayTpl.IsOpen {
			if shift, ok := dayTpl.Employees[emp.ID]; ok {
				breakMin, err := totalBreakMinutes(shift.BreakPeriods)
				if err != nil {
					return payroll.EmployeeWorkSchedule{}, fmt.Errorf("template %s/%s: %w", weekday, emp.ID, err)
				}
				wh, err := CalculateWorkHours(shift.StartTime, shift.EndTime, breakMin)
				if err != nil {
					return payroll.EmployeeWorkSchedule{}, fmt.Errorf("template %s/%s: %w", weekday, emp.ID, err)
				}

				start, end := shift.StartTime, shift.EndTime
				day.StartTime = &start
				day.EndTime = &end
				day.BreakMinutes = breakMin
				day.WorkHours = wh.TotalHours
			}
		}

		sched.Days = append(sched.Days, day)
	}

	c.recomputeHours(&sched)
	return sched, nil
}

// ApplyExceptions derives the final schedule from a base schedule. The
// base is deep-copied first and never mutated, so OriginalHours stays
// valid for delta computation. Exceptions are applied in the order given
// (the repository orders them by date then creation): CANCEL and
// OVERRIDE are last-wins, EXTRA accumulates.
func (c *Calculator) ApplyExceptions(base payroll.EmployeeWorkSchedule, exceptions []exception.Exception) (payroll.EmployeeWorkSchedule, error) {
	final := base.Clone()

	dayIdx := make(map[string]int, len(final.Days))
	for i, d := range final.Days {
		dayIdx[d.Date] = i
	}

	for _, exc := range exceptions {
		i, ok := dayIdx[exc.Date]
		if !ok {
			// Outside the schedule month; nothing to adjust.
			continue
		}
		day := &final.Days[i]

		if !day.HasException {
			orig := day.WorkHours
			day.OriginalHours = &orig
			day.HasException = true
		}
		excType := exc.Type
		day.ExceptionType = &excType

		switch exc.Type {
		case exception.TypeCancel:
			day.WorkHours = 0
			day.StartTime = nil
			day.EndTime = nil

		case exception.TypeOverride:
			if exc.StartTime == nil || exc.EndTime == nil {
				return payroll.EmployeeWorkSchedule{}, fmt.Errorf("override on %s: %w", exc.Date, exception.ErrMissingTimes)
			}
			wh, err := CalculateWorkHours(*exc.StartTime, *exc.EndTime, day.BreakMinutes)
			if err != nil {
				return payroll.EmployeeWorkSchedule{}, fmt.Errorf("override on %s: %w", exc.Date, err)
			}
			start, end := *exc.StartTime, *exc.EndTime
			day.StartTime = &start
			day.EndTime = &end
			day.WorkHours = wh.TotalHours

		case exception.TypeExtra:
			if exc.StartTime == nil || exc.EndTime == nil {
				return payroll.EmployeeWorkSchedule{}, fmt.Errorf("extra on %s: %w", exc.Date, exception.ErrMissingTimes)
			}
			// Extra hours accumulate on top of the day without touching
			// the displayed shift times.
			wh, err := CalculateWorkHours(*exc.StartTime, *exc.EndTime, 0)
			if err != nil {
				return payroll.EmployeeWorkSchedule{}, fmt.Errorf("extra on %s: %w", exc.Date, err)
			}
			day.WorkHours = round2(day.WorkHours + wh.TotalHours)

		default:
			return payroll.EmployeeWorkSchedule{}, fmt.Errorf("%w: %q", exception.ErrInvalidType, exc.Type)
		}
	}

	c.recomputeHours(&final)
	return final, nil
}

// CalculateExceptionAdjustments lists the hour and pay delta of every
// excepted day of a final schedule.
func (c *Calculator) CalculateExceptionAdjustments(final payroll.EmployeeWorkSchedule, hourlyWage int64) []payroll.ExceptionAdjustment {
	var adjustments []payroll.ExceptionAdjustment
	for _, day := range final.Days {
		if !day.HasException {
			continue
		}

		var orig float64
		if day.OriginalHours != nil {
			orig = *day.OriginalHours
		}
		var excType exception.Type
		if day.ExceptionType != nil {
			excType = *day.ExceptionType
		}

		diff := round2(day.WorkHours - orig)
		adjustments = append(adjustments, payroll.ExceptionAdjustment{
			Date:            day.Date,
			Type:            excType,
			OriginalHours:   orig,
			AdjustedHours:   day.WorkHours,
			HoursDifference: diff,
			PayDifference:   wonFromHours(diff, hourlyWage),
		})
	}
	return adjustments
}

// recomputeHours refreshes the derived monthly and weekly totals from
// the day rows, using the same fixed weeks-per-month convention as the
// salary projector.
func (c *Calculator) recomputeHours(s *payroll.EmployeeWorkSchedule) {
	sum := decimal.Zero
	for _, d := range s.Days {
		sum = sum.Add(decimal.NewFromFloat(d.WorkHours))
	}
	s.MonthlyHours = sum.Round(2).InexactFloat64()
	s.WeeklyHours = sum.Div(c.rates.WeeksPerMonth).Round(2).InexactFloat64()
}

// totalBreakMinutes sums the durations of a shift's unpaid breaks. A
// break that ends at or before its start wraps past midnight.
func totalBreakMinutes(periods []template.BreakPeriod) (int, error) {
	total := 0
	for _, p := range periods {
		start, err := parseClockMinutes(p.Start)
		if err != nil {
			return 0, err
		}
		end, err := parseClockMinutes(p.End)
		if err != nil {
			return 0, err
		}
		if end <= start {
			end += minutesPerDay
		}
		total += end - start
	}
	return total, nil
}
