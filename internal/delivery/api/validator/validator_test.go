package validator

import (
	"testing"

	domainerrors "courier/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin data_entry accounts"`
	From     string `query:"from" validate:"required,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid input passes", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			Email:    "a@b.io",
			Password: "longenough",
			Role:     "admin",
			From:     "2024-01-31",
		})
		assert.NoError(t, err)
	})

	t.Run("failures carry field details", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			Email:    "not-an-email",
			Password: "short",
			Role:     "owner",
			From:     "31/01/2024",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		fields, ok := appErr.Details().([]domainerrors.FieldError)
		require.True(t, ok)
		assert.Equal(t, []domainerrors.FieldError{
			{Field: "email", Message: "must be a valid email address"},
			{Field: "password", Message: "must be at least 8 characters"},
			{Field: "role", Message: "must be one of: admin, data_entry, accounts"},
			{Field: "from", Message: "must be a date in YYYY-MM-DD format"},
		}, fields)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Password: "longenough", From: "2024-01-31"})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, []domainerrors.FieldError{{Field: "email", Message: "is required"}}, appErr.Details())
	})
}
