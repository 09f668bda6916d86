package field

import "errors"

var (
	// ErrAlreadyRunning is returned by Run when another Run loop owns the field.
	ErrAlreadyRunning = errors.New("field: frame loop already running")

	// ErrInvalidParams indicates a simulation parameter outside its valid range.
	ErrInvalidParams = errors.New("field: invalid parameters")
)
