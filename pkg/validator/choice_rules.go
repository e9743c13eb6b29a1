package validator

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InListFold validates that the lowercased value is one of allowedValues.
// Lowercasing uses full Unicode case mapping with no language tailoring;
// allowedValues are expected to be lowercase already.
func InListFold(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			lower := cases.Lower(language.Und).String(value)
			return slices.Contains(allowedValues, lower)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}
