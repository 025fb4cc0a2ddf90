package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alurafood/payments/internal/port/outbound"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	claims map[string]*outbound.JWTClaims
}

func (v *stubValidator) ValidateToken(token string) (*outbound.JWTClaims, error) {
	if c, ok := v.claims[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

func newStubValidator() *stubValidator {
	return &stubValidator{claims: map[string]*outbound.JWTClaims{
		"admin-token": {Subject: "ops-1", Email: "ops@example.com", Roles: []string{"admin"}},
		"user-token":  {Subject: "user-1", Email: "user@example.com", Roles: []string{"viewer"}},
	}}
}

func authRouter(mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.String(http.StatusOK, GetSubject(c))
	})
	router.GET("/secure", handlers...)
	return router
}

func doGet(router http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set(AuthorizationHeader, BearerPrefix+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router := authRouter(RequireAuth(newStubValidator()))

	t.Run("missing token", func(t *testing.T) {
		w := doGet(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"authentication required"`)
		assert.Contains(t, w.Body.String(), `"path":"/secure"`)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doGet(router, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "invalid token")
	})

	t.Run("valid token sets subject", func(t *testing.T) {
		w := doGet(router, "user-token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	router := authRouter(RequireAuth(newStubValidator()), RequireRole("admin"))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"admin passes", "admin-token", http.StatusOK},
		{"missing role is forbidden", "user-token", http.StatusForbidden},
		{"no token is unauthenticated", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("forbidden document", func(t *testing.T) {
		w := doGet(router, "user-token")
		assert.Contains(t, w.Body.String(), `"message":"access denied"`)
	})

	t.Run("role check without auth middleware", func(t *testing.T) {
		w := doGet(authRouter(RequireRole("admin")), "admin-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Basic abc", ""},
		{"Bearer abc", "abc"},
		{"Bearer  abc ", "abc"},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			c.Request.Header.Set(AuthorizationHeader, tt.header)
		}
		assert.Equal(t, tt.want, extractBearerToken(c), tt.header)
	}
}
