package jwtauth

import (
	"testing"
	"time"

	"github.com/alurafood/payments/internal/infra/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "identity",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "ana@example.com",
		Roles: []string{"admin"},
	}
}

func TestTokenValidator_ValidateToken(t *testing.T) {
	validator := NewTokenValidator(config.AuthConfig{JWTSecret: testSecret, Issuer: "identity"})

	t.Run("valid token", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

		claims, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.True(t, claims.HasRole("admin"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims())

		_, err := validator.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)

		_, err := validator.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := validClaims()
		c.Issuer = "someone-else"
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)

		_, err := validator.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := validClaims()
		c.Subject = ""
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)

		_, err := validator.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidTokenClaims)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
