package exception

import "time"

// Type enumerates the day-level deviations from the weekly template.
type Type string

const (
	TypeCancel   Type = "CANCEL"
	TypeOverride Type = "OVERRIDE"
	TypeExtra    Type = "EXTRA"
)

var TypeValues = []string{
	string(TypeCancel),
	string(TypeOverride),
	string(TypeExtra),
}

// Exception is a day-specific deviation for one employee: CANCEL drops
// the day, OVERRIDE replaces its times, EXTRA adds an extra interval.
type Exception struct {
	ID         string
	StoreID    string
	EmployeeID string
	Date       string // YYYY-MM-DD
	Type       Type
	StartTime  *string // HH:mm, required for OVERRIDE and EXTRA
	EndTime    *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
