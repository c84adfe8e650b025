package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/metrics"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// AuthService performs the credential exchange against the upstream backend
// and drives the session transitions that follow it.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(gateway ports.AuthGateway, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions, log: log}
}

// Login exchanges credentials for a token, persists it on the session and
// returns the established identity plus its landing path. On any failure the
// session is left untouched. A single outstanding exchange per call, no
// automatic retry.
func (s *AuthService) Login(ctx context.Context, sessionID string, creds ports.Credentials) (*domain.Identity, string, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, "", &domain.AuthenticationError{Message: "email and password are required"}
	}

	raw, err := s.gateway.Login(ctx, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", err
	}

	identity, err := s.sessions.Establish(ctx, sessionID, raw)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrTokenDecode) {
			return nil, "", &domain.AuthenticationError{
				Message: "login response carried an unreadable token",
				Cause:   err,
			}
		}
		return nil, "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("role", string(identity.Role)).Str("subject", identity.Subject).Msg("session established")
	return identity, identity.Role.Landing(), nil
}

// Logout erases the persisted token and returns the session to anonymous.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// RegisterRole forwards an account creation to the role-specific endpoint.
// The backend is the authority on who may do this; a 403 surfaces as a
// distinguished AuthorizationError.
func (s *AuthService) RegisterRole(ctx context.Context, bearer string, role domain.Role, input ports.RegisterInput) error {
	return s.gateway.Register(ctx, bearer, role, input)
}
