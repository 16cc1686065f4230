package template

import "time"

// WeekdayKeys orders the schedule-data keys Monday first, matching how
// the weekly grid is edited.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// BreakPeriod is an unpaid interval inside a shift, HH:mm bounds.
type BreakPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EmployeeShift is one employee's recurring shift on a weekday.
type EmployeeShift struct {
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	BreakPeriods []BreakPeriod `json:"break_periods,omitempty"`
}

// DayTemplate is one weekday of the template. Employees is keyed by
// employee ID; a closed day carries no shifts.
type DayTemplate struct {
	IsOpen    bool                     `json:"is_open"`
	Employees map[string]EmployeeShift `json:"employees,omitempty"`
}

// ScheduleData maps weekday key ("monday".."sunday") to its day template.
// Persisted as a single JSONB column.
type ScheduleData map[string]DayTemplate

// WeeklyTemplate is the recurring baseline schedule of a store, the
// starting point before day-level exceptions.
type WeeklyTemplate struct {
	ID           string
	StoreID      string
	Name         string
	ScheduleData ScheduleData
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
