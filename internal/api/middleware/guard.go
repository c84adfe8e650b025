package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/metrics"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

const (
	loginPath  = "/login"
	publicPath = "/"
)

// Guard gates a route group behind a required role. Evaluation is
// re-run on every request:
//   - anonymous visitor            → 302 to the login view
//   - authenticated, wrong role    → 302 to the public landing view
//   - authenticated, matching role → request passes through unchanged
//
// The guard never returns an error; an unauthorized attempt is always a
// redirect.
func Guard(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}
			if identity.Role != required {
				metrics.GuardDecisionsTotal.WithLabelValues("role_redirect").Inc()
				return c.Redirect(http.StatusFound, publicPath)
			}
			metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
