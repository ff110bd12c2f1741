package api

import (
	"context"
	"fmt"
	"net/http"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	apperrors "github.com/se1dhe/botpanel/internal/errors"
	"github.com/se1dhe/botpanel/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.AuthAPI = (*Client)(nil)

// loginRequest is the JSON body sent to POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the JSON response from POST /auth/login.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges an email/password pair for a bearer credential.
// A 401 reads as rejected credentials; the message deliberately does not
// say which field was wrong.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
		out:    &out,
	})
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return "", apperrors.InvalidCredentials("invalid credentials")
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if out.AccessToken == "" {
		// A 2xx without a token is as useless as no response. Fail closed.
		return "", apperrors.Malformed("login response carried no access token")
	}
	return out.AccessToken, nil
}

// Me resolves the attached credential into an identity via GET /auth/me.
func (c *Client) Me(ctx context.Context) (domainauth.Identity, error) {
	var identity domainauth.Identity
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   "/auth/me",
		out:    &identity,
	})
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("fetch identity: %w", err)
	}

	// Never assume authenticated without a valid identity record.
	if identity.ID == 0 || !identity.Role.Valid() {
		return domainauth.Identity{}, apperrors.Malformed("identity response missing id or role")
	}
	return identity, nil
}

// Logout invalidates the server-side session. The response body is ignored.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, requestParams{method: http.MethodPost, path: "/auth/logout"}); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
