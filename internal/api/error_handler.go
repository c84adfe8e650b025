package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to its appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Typed domain errors → deterministic HTTP codes. Messages on these are
	// written to be shown to the visitor.
	var (
		authnErr *domain.AuthenticationError
		authzErr *domain.AuthorizationError
		valErr   *domain.ValidationError
		reqErr   *domain.RequestError
	)
	switch {
	case errors.As(err, &authnErr):
		return http.StatusUnauthorized, errorResponse{Error: authnErr.Message}
	case errors.As(err, &authzErr):
		return http.StatusForbidden, errorResponse{Error: authzErr.Message}
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity, errorResponse{Error: valErr.Message, Fields: valErr.Fields}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "resource not found"}
	case errors.Is(err, domain.ErrTokenDecode):
		return http.StatusUnauthorized, errorResponse{Error: "session is no longer valid"}
	case errors.As(err, &reqErr):
		return http.StatusBadGateway, errorResponse{Error: reqErr.Message}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
