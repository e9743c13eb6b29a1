package registration

import (
	"github.com/dmitrymomot/regform/pkg/validator"
)

const (
	minNameLen     = 2
	minUsernameLen = 4

	minAge    = 0
	maxAge    = 120
	minWeight = 20
	maxWeight = 300
)

var genders = []string{"male", "female"}

// Validator checks registration input. It is immutable once built and safe
// for concurrent use.
type Validator struct {
	parseAge    validator.NumberParser
	parseWeight validator.NumberParser
	password    validator.PasswordStrengthConfig
}

// Option configures a Validator.
type Option func(*Validator)

// WithStrictNumbers requires age and weight to be numbers in full: "25" is
// an age, "25 years" is not.
func WithStrictNumbers() Option {
	return func(v *Validator) {
		v.parseAge = validator.ParseIntStrict
		v.parseWeight = validator.ParseFloatStrict
	}
}

// New returns a Validator with lenient number parsing unless configured otherwise.
func New(opts ...Option) *Validator {
	v := &Validator{
		parseAge:    validator.ParseIntPrefix,
		parseWeight: validator.ParseFloatPrefix,
		password:    validator.DefaultPasswordStrength(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// Validate checks in with the default lenient Validator.
func Validate(in Input) Result {
	return defaultValidator.Validate(in)
}

// Validate checks every field of in and returns a fresh Result.
func (v *Validator) Validate(in Input) Result {
	err := validator.ApplyFirst(v.rules(in)...)
	return newResult(validator.ExtractValidationErrors(err))
}

// rules lists each field's checks in precedence order; ApplyFirst keeps only
// the first failure of a field, so "required" always wins.
func (v *Validator) rules(in Input) []validator.Rule {
	name := string(FieldName)
	age := string(FieldAge)
	weight := string(FieldWeight)
	gender := string(FieldGender)
	email := string(FieldEmail)
	username := string(FieldUsername)
	password := string(FieldPassword)
	confirm := string(FieldConfirmPassword)

	return []validator.Rule{
		validator.Required(name, in.Name).WithMessage(msgNameRequired),
		validator.MinLen(name, in.Name, minNameLen).WithMessage(msgNameTooShort),

		validator.Required(age, in.Age).WithMessage(msgAgeRequired),
		validator.NumberInRange(age, in.Age, v.parseAge, minAge, maxAge).WithMessage(msgAgeInvalid),

		validator.Required(weight, in.Weight).WithMessage(msgWeightRequired),
		validator.NumberInRange(weight, in.Weight, v.parseWeight, minWeight, maxWeight).WithMessage(msgWeightInvalid),

		validator.Required(gender, in.Gender).WithMessage(msgGenderRequired),
		validator.InListFold(gender, in.Gender, genders).WithMessage(msgGenderInvalid),

		validator.Required(email, in.Email).WithMessage(msgEmailRequired),
		validator.EmailShape(email, in.Email).WithMessage(msgEmailInvalid),

		validator.Required(username, in.Username).WithMessage(msgUsernameRequired),
		validator.MinLen(username, in.Username, minUsernameLen).WithMessage(msgUsernameTooShort),

		validator.Required(password, in.Password).WithMessage(msgPasswordRequired),
		validator.StrongPassword(password, in.Password, v.password).WithMessage(msgPasswordWeak),

		validator.Required(confirm, in.ConfirmPassword).WithMessage(msgConfirmRequired),
		validator.EqualTo(confirm, in.ConfirmPassword, password, in.Password).WithMessage(msgConfirmMismatch),
	}
}
