package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	apperrors "github.com/se1dhe/botpanel/internal/errors"
	sessionmocks "github.com/se1dhe/botpanel/internal/mocks/session"
)

func newSessionFixture(t *testing.T) (*SessionService, *sessionmocks.MemoryCredentialStore, *sessionmocks.MockAuthAPI) {
	t.Helper()
	creds := sessionmocks.NewMemoryCredentialStore()
	api := sessionmocks.NewMockAuthAPI()
	svc, err := NewSessionService(SessionServiceOptions{
		Credentials: creds,
		API:         api,
		Logger:      slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	return svc, creds, api
}

func TestNewSessionService_Validation(t *testing.T) {
	creds := sessionmocks.NewMemoryCredentialStore()
	api := sessionmocks.NewMockAuthAPI()

	_, err := NewSessionService(SessionServiceOptions{API: api})
	assert.ErrorContains(t, err, "credential store is required")

	_, err = NewSessionService(SessionServiceOptions{Credentials: creds})
	assert.ErrorContains(t, err, "auth API is required")
}

func TestSession_StartsUnresolved(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	snap := svc.Snapshot()

	assert.Equal(t, domainauth.StateUnresolved, snap.State)
	assert.False(t, snap.IsAuthenticated())
}

func TestHydrate_NoCredential(t *testing.T) {
	svc, _, api := newSessionFixture(t)

	svc.Hydrate(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, domainauth.StateUnauthenticated, snap.State)
	assert.Zero(t, api.MeCalls(), "no credential means no identity fetch")
}

func TestHydrate_RestoresSession(t *testing.T) {
	svc, creds, _ := newSessionFixture(t)
	creds.Seed("tok1")

	svc.Hydrate(context.Background())

	snap := svc.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	require.NotNil(t, snap.Identity)
	assert.Equal(t, "a@x.com", snap.Identity.Email)
}

func TestHydrate_RejectedCredentialClearsSlot(t *testing.T) {
	svc, creds, api := newSessionFixture(t)
	creds.Seed("stale")
	api.MeFunc = func(context.Context) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unauthorized("GET /auth/me: 401 Unauthorized")
	}

	svc.Hydrate(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, domainauth.StateUnauthenticated, snap.State)
	token, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "a credential that failed to resolve must be removed")
}

func TestHydrate_NetworkFailureFailsClosed(t *testing.T) {
	svc, creds, api := newSessionFixture(t)
	creds.Seed("tok1")
	api.MeFunc = func(context.Context) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unavailable("GET /auth/me: connection refused")
	}

	svc.Hydrate(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, domainauth.StateUnauthenticated, snap.State)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestHydrate_RunsOnce(t *testing.T) {
	svc, creds, api := newSessionFixture(t)
	creds.Seed("tok1")

	svc.Hydrate(context.Background())
	svc.Hydrate(context.Background())

	assert.Equal(t, 1, api.MeCalls())
}

func TestLogin_Success(t *testing.T) {
	svc, creds, _ := newSessionFixture(t)

	err := svc.Login(context.Background(), "a@x.com", "pw")

	require.NoError(t, err)
	snap := svc.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	assert.False(t, snap.IsAdmin())

	token, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
}

func TestLogin_AdminIdentity(t *testing.T) {
	svc, _, api := newSessionFixture(t)
	api.DefaultUser.Role = domainauth.RoleAdmin

	require.NoError(t, svc.Login(context.Background(), "root@x.com", "pw"))
	assert.True(t, svc.Snapshot().IsAdmin())
}

func TestLogin_EmptyInputRejectedWithoutNetworkCall(t *testing.T) {
	svc, _, api := newSessionFixture(t)

	err := svc.Login(context.Background(), "", "pw")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCredentials(err))
	assert.Zero(t, api.LoginCalls())
}

func TestLogin_InvalidCredentialsLeaveStateUntouched(t *testing.T) {
	svc, creds, api := newSessionFixture(t)
	api.LoginFunc = func(context.Context, string, string) (string, error) {
		return "", apperrors.InvalidCredentials("invalid credentials")
	}
	svc.Hydrate(context.Background())

	err := svc.Login(context.Background(), "a@x.com", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCredentials(err))
	assert.Equal(t, domainauth.StateUnauthenticated, svc.Snapshot().State)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestLogin_IdentityFetchFailureRollsBackCredential(t *testing.T) {
	svc, creds, api := newSessionFixture(t)
	api.MeFunc = func(context.Context) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unavailable("GET /auth/me: timeout")
	}
	svc.Hydrate(context.Background())

	err := svc.Login(context.Background(), "a@x.com", "pw")

	require.Error(t, err)
	assert.False(t, svc.Snapshot().IsAuthenticated())
	token, loadErr := creds.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, token, "no credential may linger without an identity behind it")
}

func TestLogin_IdentityFetchOrderedAfterExchange(t *testing.T) {
	svc, _, api := newSessionFixture(t)
	api.MeFunc = func(context.Context) (domainauth.Identity, error) {
		require.Equal(t, 1, api.LoginCalls(), "identity fetch must follow credential exchange")
		return api.DefaultUser, nil
	}

	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))
}

func TestLogout_ClearsEverything(t *testing.T) {
	svc, creds, _ := newSessionFixture(t)
	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))

	svc.Logout(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, domainauth.StateUnauthenticated, snap.State)
	assert.Nil(t, snap.Identity)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestLogout_ServerFailureStillClearsLocally(t *testing.T) {
	svc, creds, api := newSessionFixture(t)
	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))
	api.LogoutFunc = func(context.Context) error {
		return apperrors.Unavailable("POST /auth/logout: connection refused")
	}

	svc.Logout(context.Background())

	assert.False(t, svc.Snapshot().IsAuthenticated())
	token, _ := creds.Load()
	assert.Empty(t, token)
	assert.Equal(t, 1, api.LogoutCalls())
}

func TestHandleCredentialRejected_DropsSession(t *testing.T) {
	svc, creds, _ := newSessionFixture(t)
	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))

	svc.HandleCredentialRejected()

	snap := svc.Snapshot()
	assert.Equal(t, domainauth.StateUnauthenticated, snap.State)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestHandleCredentialRejected_NoopWhenAlreadyOut(t *testing.T) {
	svc, creds, _ := newSessionFixture(t)
	svc.Hydrate(context.Background())
	creds.Seed("token-from-elsewhere")

	svc.HandleCredentialRejected()

	// Already unauthenticated: nothing should change, including the slot.
	token, _ := creds.Load()
	assert.Equal(t, "token-from-elsewhere", token)
}

func TestSubscribe_NotifiedSynchronouslyOnTransitions(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	var seen []domainauth.SessionState
	svc.Subscribe(func(snap domainauth.Snapshot) {
		seen = append(seen, snap.State)
	})

	svc.Hydrate(context.Background())
	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))
	svc.Logout(context.Background())

	assert.Equal(t, []domainauth.SessionState{
		domainauth.StateUnauthenticated,
		domainauth.StateAuthenticated,
		domainauth.StateUnauthenticated,
	}, seen)
}

func TestLoginThenRecheck_Stable(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))

	// Hydrate after a completed login must not flip the resolved state.
	svc.Hydrate(context.Background())

	assert.True(t, svc.Snapshot().IsAuthenticated())
}

func TestFullScenario_LoginThenLogout(t *testing.T) {
	svc, creds, _ := newSessionFixture(t)

	require.NoError(t, svc.Login(context.Background(), "a@x.com", "pw"))

	token, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
	snap := svc.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	assert.False(t, snap.IsAdmin())
	require.NotNil(t, snap.Identity)
	assert.Equal(t, int64(1), snap.Identity.ID)
	assert.Equal(t, "A", snap.Identity.Name)

	svc.Logout(context.Background())

	token, err = creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, svc.Snapshot().IsAuthenticated())
}
