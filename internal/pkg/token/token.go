// Package token decodes Zoo Arcadia credential tokens into identities.
//
// The gateway never holds the backend's signing secret, so claims are
// extracted without signature verification. Decoded claims gate dashboards
// only; every privileged mutation is re-checked by the backend.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

type claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Decode is a pure function from a raw token to an Identity. Malformed
// tokens and tokens past their expiry yield domain.ErrTokenDecode.
func Decode(raw string) (*domain.Identity, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenDecode, err)
	}

	identity := &domain.Identity{
		Subject:  c.Subject,
		Username: c.Username,
		Email:    c.Email,
		Role:     domain.Role(c.Role),
	}
	if c.ExpiresAt != nil {
		if time.Now().After(c.ExpiresAt.Time) {
			return nil, fmt.Errorf("%w: expired at %s", domain.ErrTokenDecode, c.ExpiresAt.Time.Format(time.RFC3339))
		}
		identity.ExpiresAt = c.ExpiresAt.Time
	}
	return identity, nil
}
