package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrWageBelowMinimum  = errors.New("hourly wage is below the statutory minimum wage")
	ErrEmployeeInactive  = errors.New("employee is not active")
)
