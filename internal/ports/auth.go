// Package ports defines interfaces (hexagonal ports) for the console's
// collaborators. Implementations live in internal/adapters; orchestration
// in internal/service.
package ports

import (
	"context"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
)

// CredentialStore is the single durable slot holding the bearer credential.
// Access is synchronous; the slot survives process restarts. Absence of a
// stored value is the canonical logged-out signal and is reported as
// ("", nil), never as an error.
//
// The session service is the only writer. The request transport reads the
// slot on every outgoing call.
type CredentialStore interface {
	Load() (string, error)
	Store(token string) error
	Clear() error
}

// AuthAPI is the authentication surface of the platform backend.
type AuthAPI interface {
	// Login exchanges an email/password pair for a bearer credential.
	Login(ctx context.Context, email, password string) (token string, err error)

	// Me resolves the credential attached by the transport into an identity.
	Me(ctx context.Context) (domainauth.Identity, error)

	// Logout invalidates the server-side session for the attached credential.
	Logout(ctx context.Context) error
}
