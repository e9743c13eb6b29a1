package validator

import (
	"fmt"
	"unicode/utf16"
)

// Required validates that a string is not empty.
// Whitespace counts as content: a value typed as " " is filled.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen validates that a string is at least min characters long.
// Characters are counted as UTF-16 code units, the unit text inputs on
// browsers and mobile clients report.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return TextLen(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// TextLen returns the length of s in UTF-16 code units.
// Invalid UTF-8 bytes count as one unit each.
func TextLen(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
