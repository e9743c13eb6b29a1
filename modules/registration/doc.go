// Package registration mounts the registration form over HTTP.
//
// Records arrive as a JSON object of strings or as a url-encoded form. Every
// form key must be present; a missing key is a 400 "missing_field" error, not
// a validation failure. POST /validate always answers 200 with the field
// errors, POST / answers 422 "validation_error" with the first message and
// per-field details, or 201 with the new registration id.
//
//	m := registration.New(registration.WithLogger(log))
//	r.Mount("/register", m.Handle())
package registration
