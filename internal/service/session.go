// Package service orchestrates the application's use cases on top of the
// ports layer. The session service is the single source of truth for the
// current identity and the only writer of the persisted credential.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	apperrors "github.com/se1dhe/botpanel/internal/errors"
	"github.com/se1dhe/botpanel/internal/ports"
)

// logoutCallTimeout bounds the best-effort server-side logout call. Local
// state clears regardless of how this call ends.
const logoutCallTimeout = 5 * time.Second

// SessionListener is notified after every session state transition. Listeners
// run synchronously on the mutating goroutine so a transition is fully
// propagated before the next guard decision is evaluated.
type SessionListener func(domainauth.Snapshot)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Credentials ports.CredentialStore
	API         ports.AuthAPI
	Logger      *slog.Logger
}

// SessionService owns the session state machine. All transitions go through
// Hydrate, Login, Logout, and HandleCredentialRejected; everything else only
// reads snapshots.
type SessionService struct {
	credentials ports.CredentialStore
	api         ports.AuthAPI
	logger      *slog.Logger

	mu        sync.Mutex
	state     domainauth.SessionState
	identity  *domainauth.Identity
	hydrated  bool
	listeners []SessionListener
}

// NewSessionService constructs a SessionService. The session starts in the
// unresolved state until Hydrate runs.
func NewSessionService(opts SessionServiceOptions) (*SessionService, error) {
	if opts.Credentials == nil {
		return nil, errors.New("credential store is required")
	}
	if opts.API == nil {
		return nil, errors.New("auth API is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		credentials: opts.Credentials,
		api:         opts.API,
		logger:      logger,
		state:       domainauth.StateUnresolved,
	}, nil
}

// Snapshot returns the current session state and identity.
func (s *SessionService) Snapshot() domainauth.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener for session transitions. The listener is
// invoked synchronously with the post-transition snapshot.
func (s *SessionService) Subscribe(fn SessionListener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Hydrate restores a session from a previously persisted credential. It runs
// at most once per process; later calls are no-ops. Any failure resolves the
// session to unauthenticated and clears the persisted credential. Failures
// are logged, never surfaced: the caller cannot act on them.
func (s *SessionService) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return
	}
	s.hydrated = true
	s.mu.Unlock()

	token, err := s.credentials.Load()
	if err != nil {
		s.logger.Warn("hydrate: read credential", "error", err)
		s.resolve(domainauth.StateUnauthenticated, nil)
		return
	}
	if token == "" {
		s.resolve(domainauth.StateUnauthenticated, nil)
		return
	}

	identity, err := s.api.Me(ctx)
	if err != nil {
		// A credential that no longer resolves is dead weight either way.
		s.logger.Warn("hydrate: resolve identity", "error", err)
		s.clearCredential("hydrate")
		s.resolve(domainauth.StateUnauthenticated, nil)
		return
	}

	s.resolve(domainauth.StateAuthenticated, &identity)
}

// Login exchanges credentials for a token, persists it, and resolves the
// identity behind it. The two calls form one transition: if the identity
// fetch fails after the token was persisted, the token is rolled back and
// session state is left untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperrors.InvalidCredentials("invalid credentials")
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.credentials.Store(token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	identity, err := s.api.Me(ctx)
	if err != nil {
		s.clearCredential("login rollback")
		return fmt.Errorf("resolve identity: %w", err)
	}

	s.resolve(domainauth.StateAuthenticated, &identity)
	return nil
}

// Logout ends the session. The server-side call is best effort; local
// credential and identity always clear, so callers never see a failure.
func (s *SessionService) Logout(ctx context.Context) {
	callCtx, cancel := context.WithTimeout(ctx, logoutCallTimeout)
	defer cancel()
	if err := s.api.Logout(callCtx); err != nil {
		s.logger.Warn("logout: server call", "error", err)
	}

	s.clearCredential("logout")
	s.resolve(domainauth.StateUnauthenticated, nil)
}

// HandleCredentialRejected drops the session after the backend refused the
// bearer credential on any authenticated call. Registered with the API
// client's rejection hook so a revoked token cannot leave a stale
// authenticated state behind.
func (s *SessionService) HandleCredentialRejected() {
	s.mu.Lock()
	alreadyOut := s.state == domainauth.StateUnauthenticated
	s.mu.Unlock()
	if alreadyOut {
		return
	}

	s.logger.Warn("credential rejected by backend, dropping session")
	s.clearCredential("credential rejected")
	s.resolve(domainauth.StateUnauthenticated, nil)
}

// resolve applies a state transition and notifies listeners synchronously.
// The credential slot is written before this runs, so subscribers never
// observe a credential/identity mismatch.
func (s *SessionService) resolve(state domainauth.SessionState, identity *domainauth.Identity) {
	s.mu.Lock()
	s.state = state
	s.identity = identity
	snapshot := s.snapshotLocked()
	listeners := make([]SessionListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// clearCredential removes the persisted token, logging rather than failing.
func (s *SessionService) clearCredential(op string) {
	if err := s.credentials.Clear(); err != nil {
		s.logger.Error("clear credential", "op", op, "error", err)
	}
}

func (s *SessionService) snapshotLocked() domainauth.Snapshot {
	var identity *domainauth.Identity
	if s.identity != nil {
		copied := *s.identity
		identity = &copied
	}
	return domainauth.Snapshot{State: s.state, Identity: identity}
}
