package registration

import "github.com/dmitrymomot/regform/pkg/validator"

// Errors maps each failing field to its message. Passing fields are absent.
type Errors map[Field]string

// Result is the outcome of validating one Input.
type Result struct {
	Errors  Errors `json:"errors"`
	IsValid bool   `json:"is_valid"`
}

func newResult(verrs validator.ValidationErrors) Result {
	errs := make(Errors, len(verrs))
	for field, msg := range verrs.Messages() {
		errs[Field(field)] = msg
	}
	return Result{Errors: errs, IsValid: len(errs) == 0}
}

// FirstError returns the first failing field in form order and its message.
func (r Result) FirstError() (Field, string, bool) {
	for _, f := range fieldOrder {
		if msg, ok := r.Errors[f]; ok {
			return f, msg, true
		}
	}
	return "", "", false
}

// Fields returns the failing fields in form order.
func (r Result) Fields() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if _, ok := r.Errors[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
