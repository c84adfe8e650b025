package ports

import (
	"context"
	"time"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// TokenStore persists the raw credential token, one key per session.
// Only the SessionStore implementation may touch it.
type TokenStore interface {
	// Get returns the stored token, or "" when none is stored.
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string
	Password string
}

// RegisterInput is the payload for the admin-only role registration endpoints.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// AuthGateway is the upstream boundary for credential operations. Login
// exchanges credentials for a bearer token; Register hits the role-specific
// registration endpoint with the caller's token.
type AuthGateway interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, bearer string, role domain.Role, input RegisterInput) error
}

// SessionStore is the single source of truth for "who is logged in" on a
// given browser session. It is the exclusive owner of the persisted
// credential token.
type SessionStore interface {
	// Restore reads the persisted token. A missing token yields a nil
	// identity; a malformed or expired token is erased and likewise yields
	// nil, never an error visible to the visitor.
	Restore(ctx context.Context, sessionID string) (*domain.Identity, string, error)
	// Establish decodes and persists a freshly issued token.
	Establish(ctx context.Context, sessionID, token string) (*domain.Identity, error)
	// Clear erases the persisted token.
	Clear(ctx context.Context, sessionID string) error
}

// AuthService performs the credential exchange and session transitions.
type AuthService interface {
	// Login returns the established identity and its landing path.
	Login(ctx context.Context, sessionID string, creds Credentials) (*domain.Identity, string, error)
	Logout(ctx context.Context, sessionID string) error
	RegisterRole(ctx context.Context, bearer string, role domain.Role, input RegisterInput) error
}
