package exception

import "errors"

var (
	ErrExceptionNotFound  = errors.New("schedule exception not found")
	ErrInvalidType        = errors.New("invalid exception type")
	ErrMissingTimes       = errors.New("start and end time are required for this exception type")
	ErrInvalidDate        = errors.New("exception date must be YYYY-MM-DD")
	ErrEmployeeNotInStore = errors.New("employee does not belong to this store")
)
