// Package errors holds the application error catalogue. Every error a use case
// returns to a handler implements AppError, which carries the HTTP status and
// the stable code clients match on.
package errors

import (
	"net/http"

	"courier/internal/errors"
)

type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string // safe to show to clients
	Details() any
}

// BaseError is an immutable catalogue entry. WithMessage and WithDetails
// return copies that still match the entry under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.errorCode + ": " + e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() any      { return e.details }

func (e *BaseError) WithMessage(message string) *BaseError {
	c := *e
	c.message = message

	return &c
}

func (e *BaseError) WithDetails(details any) *BaseError {
	c := *e
	c.details = details

	return &c
}

// WithCause keeps cause in the chain for logs while the response is still
// rendered from e.
func (e *BaseError) WithCause(cause error) error {
	return errors.WithStack(errors.Join(e, cause))
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode && t.httpCode == e.httpCode
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError builds a VALIDATION_FAILED error carrying field details.
func NewValidationError(fields ...FieldError) *BaseError {
	return ErrValidationFailed.WithDetails(fields)
}

// DatabaseExecuteError is an unexpected storage failure. The operation lands
// in the logs; clients only see the generic message.
type DatabaseExecuteError struct {
	err       error
	operation string
}

func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: errors.WithStack(err), operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return e.operation + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() any      { return e.operation }
