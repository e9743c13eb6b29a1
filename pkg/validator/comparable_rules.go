package validator

// EqualTo validates that value is identical to other, byte for byte.
// otherField names the field value must match, for messages and translations.
func EqualTo[T comparable](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + otherField,
			TranslationKey: "validation.equal_to",
			TranslationValues: map[string]any{
				"field":       field,
				"other_field": otherField,
			},
		},
	}
}
