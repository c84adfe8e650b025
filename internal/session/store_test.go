package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "user_1",
		"role": role,
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newTestStore() (*Store, *MemoryTokenStore) {
	tokens := NewMemoryTokenStore()
	return NewStore(tokens, time.Hour, zerolog.Nop()), tokens
}

func TestStore_Restore_Anonymous(t *testing.T) {
	store, _ := newTestStore()

	identity, raw, err := store.Restore(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected nil identity, got %+v", identity)
	}
	if raw != "" {
		t.Fatalf("expected empty token, got %q", raw)
	}
}

func TestStore_Restore_Valid(t *testing.T) {
	store, tokens := newTestStore()
	token := signToken(t, "admin", time.Now().Add(time.Hour))
	if err := tokens.Set(context.Background(), "sess_1", token, time.Hour); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	identity, raw, err := store.Restore(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if identity == nil || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if raw != token {
		t.Fatalf("expected the persisted token back")
	}
}

func TestStore_Restore_InvalidTokenErased(t *testing.T) {
	store, tokens := newTestStore()
	if err := tokens.Set(context.Background(), "sess_1", "garbage", time.Hour); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	identity, raw, err := store.Restore(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("invalid token must not surface an error, got %v", err)
	}
	if identity != nil || raw != "" {
		t.Fatalf("expected anonymous downgrade, got identity=%+v raw=%q", identity, raw)
	}

	stored, err := tokens.Get(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored != "" {
		t.Fatalf("stale token should have been erased, still stored: %q", stored)
	}
}

func TestStore_Restore_ExpiredTokenErased(t *testing.T) {
	store, tokens := newTestStore()
	token := signToken(t, "employee", time.Now().Add(-time.Minute))
	if err := tokens.Set(context.Background(), "sess_1", token, time.Hour); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	identity, _, err := store.Restore(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("expired token must not surface an error, got %v", err)
	}
	if identity != nil {
		t.Fatalf("expected anonymous downgrade, got %+v", identity)
	}

	stored, _ := tokens.Get(context.Background(), "sess_1")
	if stored != "" {
		t.Fatalf("expired token should have been erased")
	}
}

func TestStore_Establish(t *testing.T) {
	store, tokens := newTestStore()
	token := signToken(t, "veterinarian", time.Now().Add(time.Hour))

	identity, err := store.Establish(context.Background(), "sess_1", token)
	if err != nil {
		t.Fatalf("Establish returned error: %v", err)
	}
	if identity.Role != domain.RoleVeterinarian {
		t.Fatalf("unexpected role: %s", identity.Role)
	}

	stored, _ := tokens.Get(context.Background(), "sess_1")
	if stored != token {
		t.Fatalf("token was not persisted")
	}
}

func TestStore_Establish_RejectsUndecodable(t *testing.T) {
	store, tokens := newTestStore()

	if _, err := store.Establish(context.Background(), "sess_1", "garbage"); !errors.Is(err, domain.ErrTokenDecode) {
		t.Fatalf("expected ErrTokenDecode, got %v", err)
	}

	stored, _ := tokens.Get(context.Background(), "sess_1")
	if stored != "" {
		t.Fatalf("rejected token must not be persisted")
	}
}

func TestStore_Clear(t *testing.T) {
	store, tokens := newTestStore()
	token := signToken(t, "admin", time.Now().Add(time.Hour))
	if err := tokens.Set(context.Background(), "sess_1", token, time.Hour); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if err := store.Clear(context.Background(), "sess_1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	identity, _, err := store.Restore(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected anonymous after clear, got %+v", identity)
	}
}

func TestMemoryTokenStore_LazyExpiry(t *testing.T) {
	tokens := NewMemoryTokenStore()
	if err := tokens.Set(context.Background(), "sess_1", "tok", 10*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	raw, err := tokens.Get(context.Background(), "sess_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if raw != "" {
		t.Fatalf("expected token to expire, got %q", raw)
	}
}
