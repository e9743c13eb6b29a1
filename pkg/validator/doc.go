// Package validator provides a small set of declarative validation rules for
// raw, user-typed text: presence, length, numeric ranges over parsed text,
// case-insensitive choices, address shape, password strength and equality.
//
// Every exported rule constructor returns a Rule value that pairs a boolean
// Check function with translation-friendly error metadata. Rules are
// evaluated with Apply, which reports every failure, or ApplyFirst, which
// reports only the first failure per field. Both aggregate failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `password_rules.go`, etc.). Constructors capture their
// inputs and nothing else; there is no global mutable state, so the package is
// stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule              - lightweight struct containing Check func and error meta
//   - ValidationError   - describes a single failure and supports i18n keys
//   - ValidationErrors  - slice type that implements the error interface
//   - NumberParser      - reads a number out of raw text (lenient or strict)
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.Required("age", age),
//	    validator.NumberInRange("age", age, validator.ParseIntPrefix, 0, 120),
//	    validator.Required("email", email),
//	    validator.EmailShape("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for field, msg := range verrs.Messages() {
//	        // render msg next to field
//	    }
//	}
//
// # Text length
//
// Lengths are measured in UTF-16 code units (see TextLen) so that limits
// agree with what browser and mobile text inputs report.
//
// # Number parsing
//
// ParseIntPrefix and ParseFloatPrefix read the longest numeric prefix and
// ignore trailing text ("25abc" is 25). ParseIntStrict and ParseFloatStrict
// require the whole string to be a number.
//
// # Error Handling
//
// ValidationErrors implements `Is` for ErrValidationFailed, so callers can use
// errors.Is to detect validation problems while preserving details.
// Individual field errors can be inspected with Has, Get, Fields and Messages.
package validator
