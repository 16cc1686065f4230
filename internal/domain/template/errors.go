package template

import "errors"

var (
	ErrTemplateNotFound   = errors.New("schedule template not found")
	ErrInvalidWeekdayKey  = errors.New("schedule data key must be a weekday name")
	ErrInvalidShiftTimes  = errors.New("shift times must be HH:mm")
)
