package handler

import (
	"net/http"
	"testing"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

func TestDashboardEntry_Anonymous(t *testing.T) {
	h := NewDashboardHandler()

	c, rec := newAuthContext(t, http.MethodGet, "/dashboard", "")
	if err := h.Entry(c); err != nil {
		t.Fatalf("Entry returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestDashboardEntry_PerRole(t *testing.T) {
	cases := []struct {
		role domain.Role
		want string
	}{
		{domain.RoleAdmin, "/admin/dashboard"},
		{domain.RoleVeterinarian, "/vet/dashboard"},
		{domain.RoleEmployee, "/employee/dashboard"},
	}
	h := NewDashboardHandler()

	for _, tc := range cases {
		c, rec := newAuthContext(t, http.MethodGet, "/dashboard", "")
		c.Set("identity", &domain.Identity{Subject: "user_1", Role: tc.role})
		if err := h.Entry(c); err != nil {
			t.Fatalf("Entry returned error: %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Fatalf("role %s: expected 302, got %d", tc.role, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != tc.want {
			t.Fatalf("role %s: expected %q, got %q", tc.role, tc.want, loc)
		}
	}
}

func TestDashboardEntry_UnknownRoleStays(t *testing.T) {
	h := NewDashboardHandler()

	c, rec := newAuthContext(t, http.MethodGet, "/dashboard", "")
	c.Set("identity", &domain.Identity{Subject: "user_1", Role: domain.Role("zookeeper")})
	if err := h.Entry(c); err != nil {
		t.Fatalf("Entry returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown role must not redirect, got %d", rec.Code)
	}
}
