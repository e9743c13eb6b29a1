package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnparseableNumber is reported by number parsers when no numeric value can be read.
	ErrUnparseableNumber = errors.New("value is not a number")
)
