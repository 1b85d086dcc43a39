package smartinput

import "errors"

var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrInputTooLong    = errors.New("input is too long")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrMissingTitle    = errors.New("task has no title besides its fields")
)
