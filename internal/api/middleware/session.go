package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

const (
	identityKey  = "identity"
	bearerKey    = "bearer_token"
	sessionIDKey = "session_id"
)

// Session restores the identity for the request's session cookie and injects
// it into the echo context. It runs before every guard, so guard evaluation
// is a synchronous context lookup with no I/O of its own. Restore failures
// on the token store degrade to anonymous rather than failing the request.
func Session(cookieName string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			c.Set(sessionIDKey, cookie.Value)

			identity, raw, err := sessions.Restore(c.Request().Context(), cookie.Value)
			if err != nil {
				c.Logger().Warnf("session restore failed: %v", err)
				return next(c)
			}
			if identity != nil {
				c.Set(identityKey, identity)
				c.Set(bearerKey, raw)
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity restored by the Session middleware, or
// nil for an anonymous visitor.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// BearerFrom returns the raw credential token for the current identity. It
// is the only sanctioned read of the persisted token outside the session
// store itself.
func BearerFrom(c echo.Context) string {
	raw, _ := c.Get(bearerKey).(string)
	return raw
}

// SessionIDFrom returns the request's session cookie value, or "".
func SessionIDFrom(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}
