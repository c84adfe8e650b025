package domain

import "testing"

func TestRole_Landing(t *testing.T) {
	cases := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "/admin/dashboard"},
		{RoleVeterinarian, "/vet/dashboard"},
		{RoleEmployee, "/employee/dashboard"},
		{Role("zookeeper"), ""},
		{Role(""), ""},
	}
	for _, tc := range cases {
		if got := tc.role.Landing(); got != tc.want {
			t.Fatalf("Landing(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestRole_Known(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleVeterinarian, RoleEmployee} {
		if !role.Known() {
			t.Fatalf("expected %q to be known", role)
		}
	}
	if Role("zookeeper").Known() {
		t.Fatalf("zookeeper should not be known")
	}
}
