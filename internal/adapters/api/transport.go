package api

import (
	"net/http"
	"sync/atomic"

	"github.com/se1dhe/botpanel/internal/ports"
)

// bearerTransport attaches the persisted credential as a bearer token to
// every outgoing request. It is a one-way interceptor: read the slot, set
// the header when a token is present, pass through unchanged when absent.
// No retry, no recovery.
//
// The one cross-cutting duty it carries beyond attachment: when a request
// that had a credential attached comes back 401 or 403, the configured
// rejection hook fires so the session drops a revoked token no matter
// which call surfaced the rejection.
type bearerTransport struct {
	base        http.RoundTripper
	credentials ports.CredentialStore

	// onRejected is set once the session service is wired up; requests
	// before then simply skip the notification.
	onRejected atomic.Pointer[func()]
}

func newBearerTransport(base http.RoundTripper, credentials ports.CredentialStore) *bearerTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &bearerTransport{base: base, credentials: credentials}
}

// setRejectionHook registers the callback invoked on credential rejection.
func (t *bearerTransport) setRejectionHook(fn func()) {
	if fn == nil {
		return
	}
	t.onRejected.Store(&fn)
}

// RoundTrip implements http.RoundTripper.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.credentials.Load()
	if err != nil {
		// A broken slot reads as "no credential"; the request proceeds
		// unauthenticated and the backend decides.
		token = ""
	}

	if token != "" {
		// Per RoundTripper contract the request must not be mutated.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, rtErr := t.base.RoundTrip(req)
	if rtErr != nil || resp == nil {
		return resp, rtErr
	}

	if token != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		if hook := t.onRejected.Load(); hook != nil {
			(*hook)()
		}
	}

	return resp, nil
}
