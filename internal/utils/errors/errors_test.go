package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("Error returns message", func(t *testing.T) {
		err := &AppError{
			Code:    "TEST_ERROR",
			Message: "test error message",
		}
		assert.Equal(t, "test error message", err.Error())
	})

	t.Run("Error includes wrapped error", func(t *testing.T) {
		wrapped := errors.New("wrapped error")
		err := &AppError{
			Code:    "TEST_ERROR",
			Message: "test error message",
			Err:     wrapped,
		}
		assert.Contains(t, err.Error(), "test error message")
		assert.Contains(t, err.Error(), "wrapped error")
	})

	t.Run("Error falls back to kind message", func(t *testing.T) {
		err := &AppError{Kind: KindNotFound}
		assert.Equal(t, MessageNotFound, err.Error())
	})

	t.Run("Error lists details", func(t *testing.T) {
		err := Validation("amount: is required", "security_code: must have exactly 3 characters")
		assert.Contains(t, err.Error(), "amount: is required")
		assert.Contains(t, err.Error(), "security_code: must have exactly 3 characters")
	})

	t.Run("Unwrap returns wrapped error", func(t *testing.T) {
		wrapped := errors.New("wrapped error")
		err := &AppError{
			Code:    "TEST_ERROR",
			Message: "test message",
			Err:     wrapped,
		}
		assert.Equal(t, wrapped, err.Unwrap())
	})
}

func TestNewDomainError(t *testing.T) {
	err := NewDomainError("PAYMENT_NOT_FOUND", "payment not found", http.StatusNotFound, "/payments/7")

	assert.Equal(t, KindDomain, err.Kind)
	assert.Equal(t, "PAYMENT_NOT_FOUND", err.Code)
	assert.Equal(t, "payment not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "/payments/7", err.Path)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestNotFound(t *testing.T) {
	t.Run("without message", func(t *testing.T) {
		err := NotFound("")
		assert.Equal(t, KindNotFound, err.Kind)
		assert.Equal(t, "NOT_FOUND", err.Code)
		assert.Empty(t, err.Message)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("with message", func(t *testing.T) {
		err := NotFound("order not found")
		assert.Equal(t, "order not found", err.Message)
	})
}

func TestUnauthorized(t *testing.T) {
	t.Run("with custom message", func(t *testing.T) {
		err := Unauthorized("invalid token")
		assert.Equal(t, KindAuthentication, err.Kind)
		assert.Equal(t, "UNAUTHORIZED", err.Code)
		assert.Equal(t, "invalid token", err.Message)
		assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	})

	t.Run("with empty message uses default", func(t *testing.T) {
		err := Unauthorized("")
		assert.Equal(t, MessageUnauthenticated, err.Message)
	})
}

func TestForbidden(t *testing.T) {
	t.Run("with custom message", func(t *testing.T) {
		err := Forbidden("admin role required")
		assert.Equal(t, KindAuthorization, err.Kind)
		assert.Equal(t, "FORBIDDEN", err.Code)
		assert.Equal(t, "admin role required", err.Message)
		assert.Equal(t, http.StatusForbidden, err.StatusCode)
	})

	t.Run("with empty message uses default", func(t *testing.T) {
		err := Forbidden("")
		assert.Equal(t, MessageForbidden, err.Message)
	})
}

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"domain error", NewDomainError("X", "x", http.StatusConflict, ""), http.StatusConflict},
		{"validation error", Validation("a: is required"), http.StatusBadRequest},
		{"wrapped not found sentinel", fmt.Errorf("find: %w", ErrNotFound), http.StatusNotFound},
		{"unauthorized sentinel", ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden sentinel", ErrForbidden, http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetStatusCode(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "domain", KindDomain.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "authentication", KindAuthentication.String())
	assert.Equal(t, "authorization", KindAuthorization.String())
	assert.Equal(t, "unclassified", KindUnclassified.String())
}
