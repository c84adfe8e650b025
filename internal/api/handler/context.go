package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/middleware"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// ctxIdentity extracts the identity restored by the Session middleware and
// fast-fails before any upstream call. Guarded routes always have one; a
// missing identity here means the handler was wired without its guard.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}

// ctxBearer returns the raw credential token to forward upstream. Handlers
// never read persisted storage themselves; the token was loaded once by the
// session middleware.
func ctxBearer(c echo.Context) (string, error) {
	raw := middleware.BearerFrom(c)
	if raw == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing credential token")
	}
	return raw, nil
}
