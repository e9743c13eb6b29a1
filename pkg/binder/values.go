package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxBodySize is the maximum size of a request body read by Values (64KB).
const DefaultMaxBodySize = 64 << 10

const (
	mediaJSON = "application/json"
	mediaForm = "application/x-www-form-urlencoded"
)

// Values reads a flat record of string fields from the request body.
//
// Two media types are understood:
//   - application/json: a single JSON object whose values are all strings
//   - application/x-www-form-urlencoded: the first value of each key
//
// Key presence is preserved: a key sent with an empty value is present in the
// returned map with "", a key not sent is absent.
func Values(r *http.Request) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected %s or %s", ErrMissingContentType, mediaJSON, mediaForm)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	switch strings.ToLower(mediaType) {
	case mediaJSON:
		return jsonValues(r)
	case mediaForm:
		return formValues(r)
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}

func jsonValues(r *http.Request) (map[string]string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, DefaultMaxBodySize)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	var raw map[string]json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
	}

	// Ensure entire body was consumed
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	values := make(map[string]string, len(raw))
	for key, msg := range raw {
		var s *string
		if err := json.Unmarshal(msg, &s); err != nil || s == nil {
			return nil, fmt.Errorf("%w: field %q must be a string", ErrFailedToParseJSON, key)
		}
		values[key] = *s
	}
	return values, nil
}

func formValues(r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)
	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, DefaultMaxBodySize)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	values := make(map[string]string, len(r.PostForm))
	for key, vs := range r.PostForm {
		if len(vs) > 0 {
			values[key] = vs[0]
		} else {
			values[key] = ""
		}
	}
	return values, nil
}

// Map returns a bind function that fills a *map[string]string with Values.
// It matches the handler.Bind signature.
func Map() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		dst, ok := v.(*map[string]string)
		if !ok {
			return fmt.Errorf("%w: Map binds into *map[string]string, got %T", ErrUnsupportedTarget, v)
		}
		values, err := Values(r)
		if err != nil {
			return err
		}
		*dst = values
		return nil
	}
}
