// Package auth contains domain-level types for the client session.
// It is pure and free of transport/adapter concerns.
package auth

// Role represents the application's authorization role.
// Keep string form for easy decoding from API responses.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the closed set the backend issues.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the resolved user record backing an authenticated session,
// as returned by GET /auth/me.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SessionState enumerates the lifecycle states of the client session.
type SessionState int

const (
	// StateUnresolved is the startup state before hydration completes.
	// Guards must treat it as pending, never as a denial.
	StateUnresolved SessionState = iota
	// StateUnauthenticated means no identity is present.
	StateUnauthenticated
	// StateAuthenticated means a credential resolved to an identity.
	StateAuthenticated
)

// String returns a human-readable state name for logging.
func (s SessionState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at a point in time.
// Identity is nil unless State is StateAuthenticated.
type Snapshot struct {
	State    SessionState
	Identity *Identity
}

// IsAuthenticated reports whether an identity is present.
// Derived, never stored: identity presence is the single source of truth.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateAuthenticated && s.Identity != nil
}

// IsAdmin reports whether the resolved identity carries the admin role.
func (s Snapshot) IsAdmin() bool {
	return s.IsAuthenticated() && s.Identity.Role == RoleAdmin
}
