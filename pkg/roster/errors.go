package roster

import (
	"errors"
)

var (
	// ErrFormat is returned when a birthday string is not day.month.year
	ErrFormat = errors.New("invalid date format")

	// ErrNotFound is returned when a referenced hero does not exist
	ErrNotFound = errors.New("hero not found")

	// ErrAmbiguous is returned when a lookup expected one row and got several
	ErrAmbiguous = errors.New("multiple heroes returned")

	// ErrInsufficientData is returned when there is not enough data to make a clash
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUniqueViolation marks a rejected duplicate. Operations log it as a
	// warning and never return it.
	ErrUniqueViolation = errors.New("unique violation")
)
