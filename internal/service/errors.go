package service

import "errors"

// Validation errors returned by service operations when request input cannot
// be converted to typed values. The HTTP layer reports them with a 400 status.
var (
	ErrEmptyUsername    = errors.New("username must not be empty")
	ErrEmptyDescription = errors.New("description must not be empty")

	ErrInvalidDuration = errors.New("duration must be a positive whole number of minutes")
	ErrInvalidDate     = errors.New("date must be a calendar date in YYYY-MM-DD form")
	ErrInvalidLimit    = errors.New("limit must be a positive whole number")
)
