package stylename

import "errors"

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrInputTooLong  = errors.New("input too long")
	ErrInvalidFormat = errors.New("invalid format")
)
