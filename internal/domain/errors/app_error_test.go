package errors

import (
	"net/http"
	"testing"

	"courier/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseErrorCopiesMatchCatalogue(t *testing.T) {
	withMsg := ErrUnauthorized.WithMessage("Invalid or expired token")
	withDetails := ErrDriverHasOrders.WithDetails(map[string]int{"order_count": 3})

	assert.True(t, errors.Is(withMsg, ErrUnauthorized))
	assert.True(t, errors.Is(errors.Wrap(withDetails, "delete driver"), ErrDriverHasOrders))
	assert.False(t, errors.Is(withMsg, ErrForbidden))

	assert.Equal(t, "Authentication required", ErrUnauthorized.Message())
	assert.Equal(t, "Invalid or expired token", withMsg.Message())
	assert.Nil(t, ErrDriverHasOrders.Details())
}

func TestWithCause(t *testing.T) {
	cause := errors.New("bcrypt: password length exceeds 72 bytes")
	err := ErrPasswordHashFailed.WithCause(cause)

	assert.True(t, errors.Is(err, ErrPasswordHashFailed))
	assert.True(t, errors.Is(err, cause))

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, "PASSWORD_HASH_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "create order")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "create order: connection reset", err.Error())
	assert.Equal(t, "Database execution failed", err.Message())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(FieldError{Field: "email", Message: "is required"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, []FieldError{{Field: "email", Message: "is required"}}, err.Details())
}
