// Package session owns the persisted credential token and the identity
// derived from it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/metrics"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
	"github.com/zoo-arcadia/arcadia-gateway/internal/pkg/token"
)

const defaultTTL = 24 * time.Hour

// Store implements ports.SessionStore on top of a TokenStore.
type Store struct {
	tokens ports.TokenStore
	ttl    time.Duration
	log    zerolog.Logger
}

func NewStore(tokens ports.TokenStore, ttl time.Duration, log zerolog.Logger) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{tokens: tokens, ttl: ttl, log: log}
}

// Restore derives the current identity from the persisted token. A missing
// token means anonymous. A token that no longer decodes is erased and the
// session downgrades to anonymous silently; an expired or corrupt token must
// never block the public site from loading.
func (s *Store) Restore(ctx context.Context, sessionID string) (*domain.Identity, string, error) {
	raw, err := s.tokens.Get(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("session restore: %w", err)
	}
	if raw == "" {
		metrics.SessionsRestoredTotal.WithLabelValues("anonymous").Inc()
		return nil, "", nil
	}

	identity, err := token.Decode(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrTokenDecode) {
			return nil, "", err
		}
		if delErr := s.tokens.Delete(ctx, sessionID); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to erase stale credential token")
		}
		s.log.Debug().Err(err).Msg("persisted token no longer decodes, downgrading to anonymous")
		metrics.SessionsRestoredTotal.WithLabelValues("invalid").Inc()
		return nil, "", nil
	}

	metrics.SessionsRestoredTotal.WithLabelValues("authenticated").Inc()
	return identity, raw, nil
}

// Establish decodes a freshly issued token and persists it. The token is not
// written when it fails to decode, so a rejected establishment leaves the
// session exactly as it was.
func (s *Store) Establish(ctx context.Context, sessionID, raw string) (*domain.Identity, error) {
	identity, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}

	ttl := s.ttl
	if !identity.ExpiresAt.IsZero() {
		if remaining := time.Until(identity.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if err := s.tokens.Set(ctx, sessionID, raw, ttl); err != nil {
		return nil, fmt.Errorf("session establish: %w", err)
	}
	return identity, nil
}

// Clear erases the persisted token, returning the session to anonymous.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.tokens.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
