package domain

import "errors"

var (
	// ErrInvalidHours indicates an hours value that is not a non-negative number.
	ErrInvalidHours = errors.New("hours must be a non-negative number")

	// ErrInvalidDate indicates a date key that is not a YYYY-MM-DD calendar day.
	ErrInvalidDate = errors.New("date must use YYYY-MM-DD format")

	// ErrInvalidMonth indicates a month key that is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("month must use YYYY-MM format")
)
