// Package registration validates the fields of a new-account registration
// form: name, age, weight, gender, email, username, password and its
// confirmation.
//
// Validate is a pure function of an Input value. It never fails, never
// mutates its argument and keeps no state between calls; the returned Result
// carries one message per failing field and an IsValid flag that is true
// exactly when no field fails. An empty field only ever reports its
// "required" message.
//
// Callers that hold the form state while a user types use Form, which
// re-validates on every Set and keeps the latest Result:
//
//	form := registration.NewForm(registration.New())
//	res, _ := form.Set(registration.FieldEmail, "user@example")
//	if msg, ok := res.Errors[registration.FieldEmail]; ok {
//		// render msg next to the email input
//	}
//
// Records arriving as maps (HTTP bodies, files) go through ParseInput, which
// rejects records missing any of the eight keys with ErrMissingField.
//
// Age and weight are parsed leniently by default: leading whitespace is
// skipped and trailing text ignored, so "25 years" is age 25. Use
// WithStrictNumbers to require the whole value to be a number.
package registration
