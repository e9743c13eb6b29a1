package registration

import (
	"fmt"
	"maps"
)

// Form holds the registration inputs while a user fills them in and keeps
// the Result of the latest change. It is caller-owned state and not safe for
// concurrent use.
type Form struct {
	validator *Validator
	input     Input
	result    Result
}

// NewForm returns an empty form validated with v, or with the default
// Validator when v is nil.
func NewForm(v *Validator) *Form {
	if v == nil {
		v = defaultValidator
	}
	f := &Form{validator: v}
	f.result = v.Validate(f.input)
	return f
}

// Set changes one field and re-validates the whole form.
func (f *Form) Set(field Field, value string) (Result, error) {
	if err := f.input.Set(field, value); err != nil {
		return f.Result(), err
	}
	f.result = f.validator.Validate(f.input)
	return f.Result(), nil
}

// Input returns the current field values.
func (f *Form) Input() Input {
	return f.input
}

// Result returns the outcome of the latest change. Its Errors map is a copy,
// so edits to it do not reach the form.
func (f *Form) Result() Result {
	return Result{Errors: maps.Clone(f.result.Errors), IsValid: f.result.IsValid}
}

// Submit returns the inputs when every field passes. Otherwise it returns
// ErrInvalidInput carrying the first failing field and its message.
func (f *Form) Submit() (Input, error) {
	if f.result.IsValid {
		return f.input, nil
	}
	field, msg, _ := f.result.FirstError()
	return Input{}, fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, msg)
}
