// Package api implements the typed HTTP client for the bot-platform
// backend. The client owns the base address, the credential-attaching
// transport, and the mapping from HTTP status codes to the application
// error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/se1dhe/botpanel/internal/errors"
	"github.com/se1dhe/botpanel/internal/ports"
)

const requestIDHeader = "X-Request-ID"

// Config groups construction parameters for Client.
type Config struct {
	// BaseURL is the backend API root, including any path prefix
	// (e.g. http://localhost:8000/api/v1).
	BaseURL string

	// Timeout bounds every request. The client imposes no policy of its
	// own beyond this; a timeout surfaces as an unavailable error like
	// any other network failure.
	Timeout time.Duration

	// Credentials is the durable slot the transport reads on every call.
	Credentials ports.CredentialStore

	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

// Client issues requests against the backend API.
type Client struct {
	baseURL   *url.URL
	transport *bearerTransport
	http      *http.Client
}

// NewClient builds a Client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api base URL %q must be absolute", raw)
	}
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("credential store is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := newBearerTransport(cfg.Transport, cfg.Credentials)
	return &Client{
		baseURL:   base,
		transport: transport,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// OnCredentialRejected registers the callback invoked when an authenticated
// request is refused with 401/403. The session service registers itself here
// so a revoked credential drops the session regardless of which call
// surfaced the rejection.
func (c *Client) OnCredentialRejected(fn func()) {
	c.transport.setRejectionHook(fn)
}

// requestParams holds parameters for a single API call.
type requestParams struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
}

// do issues one request and decodes the response into params.out when set.
// Network failures and undecodable responses map to the unavailable and
// malformed error codes respectively; HTTP error statuses map through
// mapStatusErr.
func (c *Client) do(ctx context.Context, params requestParams) error {
	endpoint, err := url.JoinPath(c.baseURL.String(), params.path)
	if err != nil {
		return fmt.Errorf("build request url: %w", err)
	}
	if len(params.query) > 0 {
		endpoint += "?" + params.query.Encode()
	}

	var body io.Reader
	if params.body != nil {
		payload, merr := json.Marshal(params.body)
		if merr != nil {
			return fmt.Errorf("encode request body: %w", merr)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, params.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if params.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "%s %s", params.method, params.path)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapStatusErr(resp, params)
	}

	if params.out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(params.out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeMalformed, "decode %s %s response", params.method, params.path)
	}
	return nil
}

// errorBody is the backend's error envelope. The detail is included in the
// error message for diagnostics; it never drives behavior.
type errorBody struct {
	Detail string `json:"detail"`
}

// mapStatusErr converts a non-2xx response into an application error.
func (c *Client) mapStatusErr(resp *http.Response, params requestParams) error {
	detail := ""
	var envelope errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope); err == nil {
		detail = strings.TrimSpace(envelope.Detail)
	}

	message := fmt.Sprintf("%s %s: %s", params.method, params.path, resp.Status)
	if detail != "" {
		message = fmt.Sprintf("%s (%s)", message, detail)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case resp.StatusCode == http.StatusForbidden:
		return apperrors.Forbidden(message)
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound(message)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return apperrors.Validation(message)
	default:
		return apperrors.Unavailable(message)
	}
}
