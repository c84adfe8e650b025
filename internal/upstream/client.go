// Package upstream is the HTTP boundary to the remote Zoo Arcadia REST
// backend. Every proxied collection and the credential exchange go through
// the Client here; nothing else in the gateway talks to the backend.
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/metrics"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for reaching the backend.
type Config struct {
	// BaseURL is the root of the external API, e.g.
	// https://zoo-api-2ivv.onrender.com/api/v1
	BaseURL string
	Timeout time.Duration
}

// Client implements every resource gateway port over a shared resty client.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: hc, log: log}
}

// upstreamError mirrors the backend's error envelope.
type upstreamError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// do executes one upstream call and maps failures onto the domain error
// taxonomy. bearer is forwarded verbatim when non-empty.
func (c *Client) do(ctx context.Context, resource, method, path, bearer string, body, out any) error {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if bearer != "" {
		req.SetHeader("Authorization", "Bearer "+bearer)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	var ue upstreamError
	req.SetError(&ue)

	resp, err := req.Execute(method, path)
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "error").Inc()
		c.log.Warn().Err(err).Str("resource", resource).Str("path", path).Msg("upstream request failed")
		return &domain.RequestError{
			Message: "the zoo service is unreachable, please try again later",
			Cause:   err,
		}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(resource, statusClass(resp.StatusCode())).Inc()
	if resp.IsError() {
		return mapStatus(resp.StatusCode(), ue)
	}
	return nil
}

// Ping probes the backend with its cheapest public read. Used by the
// readiness endpoint only.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, "/services", "", nil, nil)
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 200:
		return "2xx"
	}
	return fmt.Sprintf("%d", code)
}

// mapStatus converts an upstream rejection into a typed domain error,
// keeping the backend's message when it provided one.
func mapStatus(code int, ue upstreamError) error {
	switch code {
	case http.StatusUnauthorized:
		return &domain.AuthenticationError{Message: message(ue, "authentication rejected by the zoo service")}
	case http.StatusForbidden:
		return &domain.AuthorizationError{Message: message(ue, "you are not authorized to perform this action")}
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &domain.ValidationError{
			Message: message(ue, "the submitted data was rejected"),
			Fields:  ue.Errors,
		}
	}
	return &domain.RequestError{
		StatusCode: code,
		Message:    message(ue, "the zoo service returned an unexpected error, please try again"),
	}
}

func message(ue upstreamError, fallback string) string {
	if ue.Message != "" {
		return ue.Message
	}
	return fallback
}
