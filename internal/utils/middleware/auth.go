package middleware

import (
	"strings"

	"github.com/alurafood/payments/internal/port/outbound"
	"github.com/alurafood/payments/internal/utils/requestctx"
	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"github.com/alurafood/payments/internal/utils/response"
	"github.com/gin-gonic/gin"
)

const (
	// AuthorizationHeader is the header key for authorization.
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens.
	BearerPrefix = "Bearer "
	// SubjectKey is the context key for the token subject.
	SubjectKey = "subject"
	// RolesKey is the context key for roles.
	RolesKey = "roles"
)

// RequireAuth returns a middleware that requires a valid bearer token.
// On success it stores the token subject and roles in the context.
func RequireAuth(validator outbound.TokenValidatorPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			response.Error(c, apperrors.Unauthorized(""))
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			response.Error(c, apperrors.Unauthorized("").WithError(err))
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(RolesKey, claims.Roles)
		c.Request = c.Request.WithContext(requestctx.WithSubject(c.Request.Context(), claims.Subject))

		c.Next()
	}
}

// RequireRole rejects requests whose token does not carry role.
// It must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			response.Error(c, apperrors.Unauthorized(""))
			return
		}
		for _, r := range GetRoles(c) {
			if r == role {
				c.Next()
				return
			}
		}
		response.Error(c, apperrors.Forbidden(""))
	}
}

// extractBearerToken extracts the bearer token from the Authorization header.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}

	if strings.HasPrefix(authHeader, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
	}

	return ""
}

// GetSubject returns the token subject from context.
func GetSubject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}

// GetRoles returns the token roles from context.
func GetRoles(c *gin.Context) []string {
	return c.GetStringSlice(RolesKey)
}

// IsAuthenticated returns true if the caller presented a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return GetSubject(c) != ""
}
