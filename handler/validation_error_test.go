package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/toolgate/handler"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty error", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		assert.Equal(t, "Validation failed", err.Error())
		assert.Empty(t, err.Summary())
		assert.True(t, err.IsEmpty())
	})

	t.Run("single field yields its message", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("phone", "phone is required")

		assert.Equal(t, "phone is required", err.Summary())
		assert.Equal(t, "validation error: phone is required", err.Error())
		assert.True(t, err.Has("phone"))
		assert.False(t, err.Has("email"))
		assert.Equal(t, "phone is required", err.Get("phone"))
	})

	t.Run("fields are ordered by name", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("password", "password is required")
		err.Add("email", "email is required")

		assert.Equal(t, "email is required; password is required", err.Summary())
	})

	t.Run("only first message per field is summarized", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("email", "email is required")
		err.Add("email", "email must be a valid email address")

		assert.Equal(t, "email is required", err.Summary())
		assert.Len(t, err["email"], 2)
	})
}
