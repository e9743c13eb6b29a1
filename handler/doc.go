// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already decoded by the
// configured Bind functions, and returns a Response. Wrap turns it into an
// http.HandlerFunc: binding errors and render errors go to the ErrorHandler,
// decorators wrap the typed handler.
//
// JSON and JSONError render the {data, meta, error} envelope. Errors map to
// status codes by type: ValidationError is 422 with per-field details,
// HTTPError carries its own code and key, anything else is 500.
// NewJSONErrorHandler logs the failure with the request id and renders it in
// the same envelope.
package handler
