package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fleetdesk/fleetcli/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login endpoint's payload. RefreshToken may be empty:
// a backend that issues none leaves the session unable to refresh, which
// degrades proactive refresh to a no-op.
type LoginResponse struct {
	User         *session.User `json:"user"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login authenticates with username/password. The call itself carries no
// bearer token and never triggers a refresh.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out, false); err != nil {
		return nil, err
	}
	if out.User == nil || out.Token == "" {
		return nil, fmt.Errorf("login response missing user or token")
	}
	return &out, nil
}

// refreshCall exchanges the refresh token for a new pair. Sent without a
// bearer token so an expired access token cannot recurse into refresh.
func (c *Client) refreshCall(ctx context.Context, refreshToken string) (string, string, error) {
	var out refreshResponse
	req := refreshRequest{RefreshToken: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", req, &out, false); err != nil {
		return "", "", err
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return "", "", fmt.Errorf("refresh response missing tokens")
	}
	return out.AccessToken, out.RefreshToken, nil
}

// Logout notifies the server that the session ends. Best-effort: the caller
// clears local state regardless of the outcome. The session is being
// discarded, so an expired access token is not worth a refresh cycle and a
// rejection must not broadcast another logout.
func (c *Client) Logout(ctx context.Context) error {
	status, body, err := c.send(ctx, http.MethodPost, "/auth/logout", nil, true)
	if err != nil {
		return err
	}
	return c.handle(ctx, status, body, nil, false)
}
