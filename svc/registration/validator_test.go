package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/svc/registration"
)

func validInput() registration.Input {
	return registration.Input{
		Name:            "Jane Doe",
		Age:             "30",
		Weight:          "65.5",
		Gender:          "Female",
		Email:           "jane@example.com",
		Username:        "jane",
		Password:        "Abcdef12",
		ConfirmPassword: "Abcdef12",
	}
}

// withField returns a valid input with one field replaced.
func withField(t *testing.T, f registration.Field, value string) registration.Input {
	t.Helper()
	in := validInput()
	require.NoError(t, in.Set(f, value))
	return in
}

func TestValidate_EmptyInput(t *testing.T) {
	t.Parallel()

	res := registration.Validate(registration.Input{})

	assert.False(t, res.IsValid)
	assert.Equal(t, registration.Errors{
		registration.FieldName:            "Name is required",
		registration.FieldAge:             "Age is required",
		registration.FieldWeight:          "Weight is required",
		registration.FieldGender:          "Gender is required",
		registration.FieldEmail:           "Email is required",
		registration.FieldUsername:        "Username is required",
		registration.FieldPassword:        "Password is required",
		registration.FieldConfirmPassword: "Please confirm your password",
	}, res.Errors)
}

func TestValidate_ValidInput(t *testing.T) {
	t.Parallel()

	res := registration.Validate(validInput())

	assert.True(t, res.IsValid)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []registration.Input{
		{},
		validInput(),
		withField(t, registration.FieldEmail, "broken"),
	}
	for _, in := range inputs {
		first := registration.Validate(in)
		second := registration.Validate(in)
		assert.Equal(t, first, second)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := withField(t, registration.FieldName, " x ")
	before := in
	registration.Validate(in)
	assert.Equal(t, before, in)
}

func TestValidate_Fields(t *testing.T) {
	t.Parallel()

	type check struct {
		value string
		msg   string // empty when the value passes
	}

	cases := map[registration.Field][]check{
		registration.FieldName: {
			{"Jo", ""},
			{"J", "Name must be at least 2 characters"},
			{" ", "Name must be at least 2 characters"},
			{"  ", ""},
			{"Zoë", ""},
		},
		registration.FieldAge: {
			{"0", ""},
			{"-1", "Please enter a valid age"},
			{"120", ""},
			{"121", "Please enter a valid age"},
			{"25abc", ""},
			{" 25", ""},
			{"abc", "Please enter a valid age"},
			{"25.7", ""},
			{"0x78", ""},
			{"0x79", "Please enter a valid age"},
		},
		registration.FieldWeight: {
			{"20", ""},
			{"19.9", "Please enter a valid weight"},
			{"300", ""},
			{"300.1", "Please enter a valid weight"},
			{"72.5kg", ""},
			{"heavy", "Please enter a valid weight"},
			{"Infinity", "Please enter a valid weight"},
			{"2e2", ""},
		},
		registration.FieldGender: {
			{"MALE", ""},
			{"Male", ""},
			{"male", ""},
			{"fEmAlE", ""},
			{"other", "Please enter either Male or Female"},
			{"male ", "Please enter either Male or Female"},
		},
		registration.FieldEmail: {
			{"a@b.c", ""},
			{"jane@example", "Please enter a valid email"},
			{"jane doe@example.com", "Please enter a valid email"},
			{"jane@@example.com", "Please enter a valid email"},
		},
		registration.FieldUsername: {
			{"jane", ""},
			{"jan", "Username must be at least 4 characters"},
		},
	}

	for field, checks := range cases {
		for _, c := range checks {
			res := registration.Validate(withField(t, field, c.value))
			if c.msg == "" {
				assert.True(t, res.IsValid, "%s=%q should pass, got %v", field, c.value, res.Errors)
				continue
			}
			assert.False(t, res.IsValid, "%s=%q should fail", field, c.value)
			assert.Equal(t, registration.Errors{field: c.msg}, res.Errors, "%s=%q", field, c.value)
		}
	}
}

func TestValidate_Password(t *testing.T) {
	t.Parallel()

	setPassword := func(p string) registration.Input {
		in := validInput()
		in.Password = p
		in.ConfirmPassword = p
		return in
	}

	t.Run("weak passwords", func(t *testing.T) {
		for _, p := range []string{"abcdefgh", "Ab1", "ABCDEFG1", "abcdefg1", "Abcdefgh"} {
			res := registration.Validate(setPassword(p))
			assert.Equal(t, registration.Errors{
				registration.FieldPassword: "Password must be at least 8 characters with 1 uppercase, 1 lowercase, and 1 number",
			}, res.Errors, "password %q", p)
		}
	})

	t.Run("strong passwords", func(t *testing.T) {
		for _, p := range []string{"Abcdefg1", "Abcdef12", "Correct Horse Battery 9"} {
			res := registration.Validate(setPassword(p))
			assert.True(t, res.IsValid, "password %q", p)
		}
	})
}

func TestValidate_ConfirmPassword(t *testing.T) {
	t.Parallel()

	t.Run("mismatch reports only the confirmation", func(t *testing.T) {
		in := validInput()
		in.Password = "Abcdef12"
		in.ConfirmPassword = "Abcdef13"

		res := registration.Validate(in)
		assert.Equal(t, registration.Errors{
			registration.FieldConfirmPassword: "Passwords do not match",
		}, res.Errors)
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		in := validInput()
		in.ConfirmPassword = "abcdef12"

		res := registration.Validate(in)
		assert.Equal(t, "Passwords do not match", res.Errors[registration.FieldConfirmPassword])
	})

	t.Run("empty confirmation is required, not a mismatch", func(t *testing.T) {
		in := validInput()
		in.ConfirmPassword = ""

		res := registration.Validate(in)
		assert.Equal(t, registration.Errors{
			registration.FieldConfirmPassword: "Please confirm your password",
		}, res.Errors)
	})

	t.Run("weak password still compared", func(t *testing.T) {
		in := validInput()
		in.Password = "weak"
		in.ConfirmPassword = "weak!"

		res := registration.Validate(in)
		assert.Len(t, res.Errors, 2)
		assert.Contains(t, res.Errors, registration.FieldPassword)
		assert.Contains(t, res.Errors, registration.FieldConfirmPassword)
	})
}

func TestValidator_StrictNumbers(t *testing.T) {
	t.Parallel()

	strict := registration.New(registration.WithStrictNumbers())

	t.Run("whole numbers pass", func(t *testing.T) {
		in := validInput()
		in.Age = "120"
		in.Weight = "20"
		assert.True(t, strict.Validate(in).IsValid)
	})

	t.Run("trailing text fails", func(t *testing.T) {
		in := validInput()
		in.Age = "25abc"
		in.Weight = "72.5kg"

		res := strict.Validate(in)
		assert.Equal(t, registration.Errors{
			registration.FieldAge:    "Please enter a valid age",
			registration.FieldWeight: "Please enter a valid weight",
		}, res.Errors)
	})

	t.Run("fractional age fails", func(t *testing.T) {
		in := validInput()
		in.Age = "25.5"
		assert.Contains(t, strict.Validate(in).Errors, registration.FieldAge)
	})

	t.Run("empty fields still report required", func(t *testing.T) {
		res := strict.Validate(registration.Input{})
		assert.Equal(t, "Age is required", res.Errors[registration.FieldAge])
	})
}

func TestResult_FirstError(t *testing.T) {
	t.Parallel()

	t.Run("follows form order", func(t *testing.T) {
		in := validInput()
		in.Username = "x"
		in.Age = "500"

		field, msg, ok := registration.Validate(in).FirstError()
		require.True(t, ok)
		assert.Equal(t, registration.FieldAge, field)
		assert.Equal(t, "Please enter a valid age", msg)
	})

	t.Run("valid result has none", func(t *testing.T) {
		_, _, ok := registration.Validate(validInput()).FirstError()
		assert.False(t, ok)
	})

	t.Run("fields in form order", func(t *testing.T) {
		in := validInput()
		in.ConfirmPassword = ""
		in.Name = ""
		assert.Equal(t, []registration.Field{
			registration.FieldName,
			registration.FieldConfirmPassword,
		}, registration.Validate(in).Fields())
	})
}
