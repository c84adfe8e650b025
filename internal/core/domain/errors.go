package domain

import "errors"

// ErrTokenDecode marks a persisted credential token as malformed or expired.
// It is recovered locally: the token is erased and the session downgrades to
// anonymous without surfacing anything to the visitor.
var ErrTokenDecode = errors.New("credential token is malformed or expired")

// ErrNotFound maps an upstream 404 on a proxied resource.
var ErrNotFound = errors.New("resource not found")

// AuthenticationError reports a rejected login exchange: bad credentials, a
// malformed response, or a transport failure during the exchange. Message is
// safe to display to the visitor.
type AuthenticationError struct {
	Message string
	Cause   error
}

func (e *AuthenticationError) Error() string { return e.Message }
func (e *AuthenticationError) Unwrap() error { return e.Cause }

// AuthorizationError reports that an authenticated but insufficiently
// privileged actor attempted a privileged action.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// ValidationError reports field-level input rejected by the backend. Fields
// is populated when the backend returns per-field detail, else only Message.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// RequestError is the catch-all for upstream transport and server failures.
type RequestError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string { return e.Message }
func (e *RequestError) Unwrap() error { return e.Cause }
