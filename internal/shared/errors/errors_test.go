package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Behavior(t *testing.T) {
	err := NewValidationError("invalid input").
		WithCode("VAL001").
		WithDetail("field", "name").
		WithComponent("test-component")

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "VAL001", err.Code)
	assert.Equal(t, "test-component", err.Component)
	assert.Equal(t, "name", err.Details["field"])
	assert.Equal(t, "invalid input", err.Error())
}

func TestAppError_WithCause_Unwrap(t *testing.T) {
	cause := ErrNotFound
	err := NewNotFoundError("resource").WithCause(cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapError_PreservesAppError(t *testing.T) {
	original := NewConflictError("already exists")
	wrapped := WrapError(original, "outer")
	assert.Equal(t, original, wrapped)

	plain := WrapError(assert.AnError, "outer")
	assert.Equal(t, ErrorTypeInternal, plain.Type)
	assert.Equal(t, assert.AnError, plain.Unwrap())
}

func TestClassifiers_AppErrors(t *testing.T) {
	nf := NewNotFoundError("item")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))
	assert.False(t, IsAuthentication(nf))

	val := NewValidationError("bad")
	assert.True(t, IsValidation(val))

	auth := NewAuthenticationError("bad")
	assert.True(t, IsAuthentication(auth))

	conflict := NewConflictError("taken")
	assert.True(t, IsConflict(conflict))
}

func TestClassifiers_Sentinels(t *testing.T) {
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.True(t, IsNotFound(ErrItemNotFound))
	assert.True(t, IsNotFound(ErrPatientNotFound))
	assert.True(t, IsNotFound(ErrProviderNotFound))
	assert.True(t, IsNotFound(ErrOperationNotFound))

	assert.True(t, IsAuthentication(ErrUnauthorized))
	assert.True(t, IsAuthentication(ErrTokenExpired))

	assert.False(t, IsNotFound(ErrInsufficientStock))
	assert.False(t, IsValidation(ErrInsufficientStock))
}
