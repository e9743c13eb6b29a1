package registration

import "errors"

var (
	// ErrMissingField is returned by ParseInput when a record lacks one of the form keys.
	ErrMissingField = errors.New("registration: missing field")

	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("registration: unknown field")

	// ErrInvalidInput is returned by Form.Submit while any field fails validation.
	ErrInvalidInput = errors.New("registration: invalid input")
)
