package employee

import "time"

// Employee is one hourly worker of a store. HourlyWage is in won; there
// are no sub-won units. Dependents feeds the withholding estimate and
// defaults to one when unset.
type Employee struct {
	ID         string
	StoreID    string
	Name       string
	HourlyWage int64
	Position   *string
	Phone      *string
	Dependents *int
	IsActive   bool
	HiredAt    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
