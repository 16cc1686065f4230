package payroll

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("time must be HH:mm")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrStoreNotFound     = errors.New("store not found")
	ErrTemplateNotFound  = errors.New("schedule template not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
)
