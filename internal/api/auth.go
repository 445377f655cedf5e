package api

import (
	"context"
	"net/http"
)

// Login authenticates with email/password and returns the user plus tokens.
// Persisting the session is the caller's job (see internal/session).
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the refresh token server-side. Best effort: callers
// clear the local session regardless of the result.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	in := map[string]string{"refreshToken": refreshToken}
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, in, nil)
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	in := map[string]string{"refreshToken": refreshToken}
	var out struct {
		Tokens Tokens `json:"tokens"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Tokens, nil
}

// CurrentUser fetches the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// BecomeArtist submits the onboarding profile and upgrades the account to an
// artist. The returned user reflects the new role.
func (c *Client) BecomeArtist(ctx context.Context, req BecomeArtistRequest) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/become-artist", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
