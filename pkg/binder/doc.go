// Package binder reads flat records of string fields out of HTTP request
// bodies.
//
// Values accepts a JSON object of string values or a url-encoded form and
// returns a map that preserves which keys were sent, so callers can tell an
// empty field from a missing one:
//
//	record, err := binder.Values(r)
//	if err != nil {
//	    // ErrMissingContentType, ErrUnsupportedMediaType, ErrFailedToParseJSON,
//	    // ErrFailedToParseForm or ErrBodyTooLarge
//	}
//
// Bodies larger than DefaultMaxBodySize are rejected. Map adapts Values to
// the handler.Bind signature.
package binder
