// Package jwtauth verifies HMAC-signed bearer tokens issued by the platform's identity service.
package jwtauth

import (
	"errors"
	"fmt"

	"github.com/alurafood/payments/internal/infra/config"
	"github.com/alurafood/payments/internal/port/outbound"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token fails parsing or verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidTokenClaims is returned when a verified token carries unusable claims.
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

// Claims represents JWT token claims.
type Claims struct {
	jwt.RegisteredClaims
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// tokenValidator implements outbound.TokenValidatorPort.
type tokenValidator struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenValidator creates a validator for tokens signed with the configured secret.
func NewTokenValidator(cfg config.AuthConfig) outbound.TokenValidatorPort {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &tokenValidator{
		secret: []byte(cfg.JWTSecret),
		parser: jwt.NewParser(opts...),
	}
}

func (v *tokenValidator) ValidateToken(tokenString string) (*outbound.JWTClaims, error) {
	token, err := v.parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidTokenClaims
	}

	return &outbound.JWTClaims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Roles:   claims.Roles,
	}, nil
}

// Compile-time interface assertion.
var _ outbound.TokenValidatorPort = (*tokenValidator)(nil)
