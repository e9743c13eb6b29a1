package registration

import (
	"fmt"
	"slices"
	"strings"
)

// Field names a registration form input. The string value is the key used
// in records, JSON bodies and error maps.
type Field string

const (
	FieldName            Field = "name"
	FieldAge             Field = "age"
	FieldWeight          Field = "weight"
	FieldGender          Field = "gender"
	FieldEmail           Field = "email"
	FieldUsername        Field = "username"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// fieldOrder is the order fields appear on the form.
var fieldOrder = [...]Field{
	FieldName,
	FieldAge,
	FieldWeight,
	FieldGender,
	FieldEmail,
	FieldUsername,
	FieldPassword,
	FieldConfirmPassword,
}

// Fields returns every form field in display order. The slice is a fresh
// copy on each call.
func Fields() []Field {
	return slices.Clone(fieldOrder[:])
}

// Valid reports whether f is one of the form fields.
func (f Field) Valid() bool {
	for _, known := range fieldOrder {
		if f == known {
			return true
		}
	}
	return false
}

// Input is a snapshot of the raw, untrimmed text of every form field.
// A field the user has not filled is the empty string.
type Input struct {
	Name            string `json:"name"`
	Age             string `json:"age"`
	Weight          string `json:"weight"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Get returns the value of field f, or "" for an unknown field.
func (in Input) Get(f Field) string {
	if p := in.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set stores value in field f.
func (in *Input) Set(f Field, value string) error {
	p := in.ptr(f)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*p = value
	return nil
}

func (in *Input) ptr(f Field) *string {
	switch f {
	case FieldName:
		return &in.Name
	case FieldAge:
		return &in.Age
	case FieldWeight:
		return &in.Weight
	case FieldGender:
		return &in.Gender
	case FieldEmail:
		return &in.Email
	case FieldUsername:
		return &in.Username
	case FieldPassword:
		return &in.Password
	case FieldConfirmPassword:
		return &in.ConfirmPassword
	}
	return nil
}

// ParseInput builds an Input from a record keyed by field name.
// Every form field must be present, even when empty; absent keys are reported
// together in a single ErrMissingField error. Keys that are not form fields
// are ignored.
func ParseInput(record map[string]string) (Input, error) {
	var (
		in      Input
		missing []string
	)
	for _, f := range fieldOrder {
		v, ok := record[string(f)]
		if !ok {
			missing = append(missing, string(f))
			continue
		}
		*in.ptr(f) = v
	}
	if len(missing) > 0 {
		return Input{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return in, nil
}
