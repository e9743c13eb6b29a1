package validator

import "regexp"

// textSpaceClass lists the characters isTextSpace accepts, for use inside a
// bracket expression.
const textSpaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// addressRegex is the shape check registration clients run: something, "@",
// something, ".", something, where no part holds whitespace or "@".
var addressRegex = regexp.MustCompile(
	`^[^@` + textSpaceClass + `]+@[^@` + textSpaceClass + `]+\.[^@` + textSpaceClass + `]+$`,
)

// EmailShape validates the loose local@domain.tld shape of an address.
// It does not parse RFC 5322; "a@b.c" passes and quoted local parts fail.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return addressRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
