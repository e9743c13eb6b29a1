package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// lineTerminators are rejected by StrongPassword unless AllowLineBreaks is set.
const lineTerminators = "\n\r\u2028\u2029"

type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int // 0 disables the upper bound
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	AllowLineBreaks  bool
}

// DefaultPasswordStrength returns the registration policy: at least 8
// characters with an uppercase letter, a lowercase letter and a digit.
// There is no upper bound and no symbol requirement.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
	}
}

// StrongPassword validates value against config. Letter and digit classes
// are ASCII only; length is counted like MinLen.
func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			n := TextLen(value)
			if n < config.MinLength || (config.MaxLength > 0 && n > config.MaxLength) {
				return false
			}
			if !config.AllowLineBreaks && strings.ContainsAny(value, lineTerminators) {
				return false
			}
			if config.RequireUppercase && !uppercaseRegex.MatchString(value) {
				return false
			}
			if config.RequireLowercase && !lowercaseRegex.MatchString(value) {
				return false
			}
			if config.RequireDigits && !digitRegex.MatchString(value) {
				return false
			}
			if config.RequireSpecial && !specialCharRegex.MatchString(value) {
				return false
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be at least %d characters with required character types", config.MinLength),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":             field,
				"min_length":        config.MinLength,
				"max_length":        config.MaxLength,
				"require_uppercase": config.RequireUppercase,
				"require_lowercase": config.RequireLowercase,
				"require_digits":    config.RequireDigits,
				"require_special":   config.RequireSpecial,
			},
		},
	}
}
