package outbound

// JWTClaims represents validated access token claims.
type JWTClaims struct {
	Subject string
	Email   string
	Roles   []string
}

// HasRole reports whether the claims carry the given role.
func (c *JWTClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenValidatorPort validates bearer tokens issued by the identity provider.
type TokenValidatorPort interface {
	// ValidateToken parses and verifies a token.
	ValidateToken(token string) (*JWTClaims, error)
}
