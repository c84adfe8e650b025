package domain

import "time"

// Role is the closed set of dashboard roles issued by the Zoo Arcadia backend.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RoleEmployee     Role = "employee"
)

// Known reports whether the role belongs to the closed set. Tokens minted by
// the backend may in principle carry anything; an unknown role never matches
// a dashboard.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleVeterinarian, RoleEmployee:
		return true
	}
	return false
}

// Landing returns the dashboard path for the role. Unknown roles map to the
// empty string, which callers must treat as "no redirect".
func (r Role) Landing() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleVeterinarian:
		return "/vet/dashboard"
	case RoleEmployee:
		return "/employee/dashboard"
	}
	return ""
}

// Identity is the decoded representation of the currently authenticated user.
// It exists only while a valid, non-expired credential token exists.
type Identity struct {
	Subject   string    `json:"subject"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}
