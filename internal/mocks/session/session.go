// Package session contains simple hand-written test doubles for the session
// ports. These are lightweight and suitable for unit tests without codegen.
package session

import (
	"context"
	"sync"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
	_ ports.AuthAPI         = (*MockAuthAPI)(nil)
)

// MemoryCredentialStore is an in-memory credential slot for tests.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	token string

	// LoadErr / StoreErr / ClearErr force failures when set.
	LoadErr  error
	StoreErr error
	ClearErr error
}

// NewMemoryCredentialStore creates an empty in-memory slot.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Seed places a token in the slot without going through Store.
func (m *MemoryCredentialStore) Seed(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryCredentialStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	return m.token, nil
}

func (m *MemoryCredentialStore) Store(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.token = token
	return nil
}

func (m *MemoryCredentialStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.token = ""
	return nil
}

// MockAuthAPI simulates the backend auth surface with overridable behavior.
type MockAuthAPI struct {
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
	MeFunc     func(ctx context.Context) (domainauth.Identity, error)
	LogoutFunc func(ctx context.Context) error

	// Defaults used when the funcs above are nil.
	Token       string
	DefaultUser domainauth.Identity

	mu          sync.Mutex
	loginCalls  int
	meCalls     int
	logoutCalls int
}

// NewMockAuthAPI creates a MockAuthAPI with sensible defaults.
func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{
		Token: "tok1",
		DefaultUser: domainauth.Identity{
			ID:    1,
			Name:  "A",
			Email: "a@x.com",
			Role:  domainauth.RoleUser,
		},
	}
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	m.mu.Lock()
	m.loginCalls++
	m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return m.Token, nil
}

func (m *MockAuthAPI) Me(ctx context.Context) (domainauth.Identity, error) {
	m.mu.Lock()
	m.meCalls++
	m.mu.Unlock()
	if m.MeFunc != nil {
		return m.MeFunc(ctx)
	}
	return m.DefaultUser, nil
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.logoutCalls++
	m.mu.Unlock()
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

// LoginCalls returns how many times Login was invoked.
func (m *MockAuthAPI) LoginCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls
}

// MeCalls returns how many times Me was invoked.
func (m *MockAuthAPI) MeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.meCalls
}

// LogoutCalls returns how many times Logout was invoked.
func (m *MockAuthAPI) LogoutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutCalls
}
