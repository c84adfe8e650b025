package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestDecode_Valid(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":      "user_1",
		"username": "alice",
		"email":    "alice@zoo-arcadia.fr",
		"role":     "veterinarian",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	identity, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if identity.Subject != "user_1" {
		t.Fatalf("unexpected subject: %s", identity.Subject)
	}
	if identity.Username != "alice" {
		t.Fatalf("unexpected username: %s", identity.Username)
	}
	if identity.Role != domain.RoleVeterinarian {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if identity.ExpiresAt.IsZero() {
		t.Fatalf("expected expiry to be populated")
	}
}

func TestDecode_UnknownRoleKept(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  "user_2",
		"role": "zookeeper",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if identity.Role.Known() {
		t.Fatalf("role %q should not be known", identity.Role)
	}
	if identity.Role.Landing() != "" {
		t.Fatalf("unknown role should have no landing, got %q", identity.Role.Landing())
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := Decode(raw); !errors.Is(err, domain.ErrTokenDecode) {
			t.Fatalf("Decode(%q): expected ErrTokenDecode, got %v", raw, err)
		}
	}
}

func TestDecode_Expired(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  "user_3",
		"role": "admin",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	if _, err := Decode(raw); !errors.Is(err, domain.ErrTokenDecode) {
		t.Fatalf("expected ErrTokenDecode for expired token, got %v", err)
	}
}

func TestDecode_NoExpiry(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  "user_4",
		"role": "employee",
	})

	identity, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !identity.ExpiresAt.IsZero() {
		t.Fatalf("expected zero expiry, got %v", identity.ExpiresAt)
	}
}
