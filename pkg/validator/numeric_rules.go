package validator

import (
	"fmt"
	"math"
)

// NumberInRange validates that raw text parses to a number within [min, max].
// Text that parse rejects fails the rule the same way an out-of-range value does.
func NumberInRange(field, value string, parse NumberParser, min, max float64) Rule {
	return Rule{
		Check: func() bool {
			v, err := parse(value)
			if err != nil || math.IsNaN(v) {
				return false
			}
			return v >= min && v <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a number between %v and %v", min, max),
			TranslationKey: "validation.number_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
