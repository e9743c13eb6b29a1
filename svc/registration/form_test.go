package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/svc/registration"
)

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("starts empty and invalid", func(t *testing.T) {
		form := registration.NewForm(nil)
		assert.Equal(t, registration.Input{}, form.Input())
		assert.False(t, form.Result().IsValid)
		assert.Len(t, form.Result().Errors, len(registration.Fields()))
	})

	t.Run("re-validates on every change", func(t *testing.T) {
		form := registration.NewForm(registration.New())

		res, err := form.Set(registration.FieldName, "J")
		require.NoError(t, err)
		assert.Equal(t, "Name must be at least 2 characters", res.Errors[registration.FieldName])

		res, err = form.Set(registration.FieldName, "Jo")
		require.NoError(t, err)
		assert.NotContains(t, res.Errors, registration.FieldName)
		assert.Equal(t, res, form.Result())
	})

	t.Run("becomes valid once every field passes", func(t *testing.T) {
		form := registration.NewForm(nil)
		want := validInput()
		var res registration.Result
		for _, f := range registration.Fields() {
			var err error
			res, err = form.Set(f, want.Get(f))
			require.NoError(t, err)
		}
		assert.True(t, res.IsValid)
		assert.Equal(t, want, form.Input())

		got, err := form.Submit()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("editing the password re-checks the confirmation", func(t *testing.T) {
		form := registration.NewForm(nil)
		for _, f := range registration.Fields() {
			_, err := form.Set(f, validInput().Get(f))
			require.NoError(t, err)
		}

		res, err := form.Set(registration.FieldPassword, "Abcdef99")
		require.NoError(t, err)
		assert.Equal(t, registration.Errors{
			registration.FieldConfirmPassword: "Passwords do not match",
		}, res.Errors)
	})

	t.Run("submit reports the first error", func(t *testing.T) {
		form := registration.NewForm(nil)
		_, err := form.Submit()
		require.ErrorIs(t, err, registration.ErrInvalidInput)
		assert.Contains(t, err.Error(), "name: Name is required")
	})

	t.Run("unknown field keeps the previous result", func(t *testing.T) {
		form := registration.NewForm(nil)
		before := form.Result()
		res, err := form.Set("nickname", "x")
		assert.ErrorIs(t, err, registration.ErrUnknownField)
		assert.Equal(t, before, res)
	})

	t.Run("returned errors are detached from the form", func(t *testing.T) {
		form := registration.NewForm(nil)

		res := form.Result()
		delete(res.Errors, registration.FieldName)
		res.Errors[registration.FieldEmail] = "edited"

		got := form.Result()
		assert.Equal(t, "Name is required", got.Errors[registration.FieldName])
		assert.Equal(t, "Email is required", got.Errors[registration.FieldEmail])

		res, err := form.Set(registration.FieldName, "Jo")
		require.NoError(t, err)
		res.Errors[registration.FieldName] = "edited"
		assert.NotContains(t, form.Result().Errors, registration.FieldName)
	})

	t.Run("strict validator is honored", func(t *testing.T) {
		form := registration.NewForm(registration.New(registration.WithStrictNumbers()))
		res, err := form.Set(registration.FieldAge, "25 years")
		require.NoError(t, err)
		assert.Equal(t, "Please enter a valid age", res.Errors[registration.FieldAge])
	})
}
