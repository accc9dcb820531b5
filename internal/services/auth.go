// Package services contains the application services of the fleetcli
// client: authentication orchestration on top of the API client and session
// manager, and read access to fleet entities.
package services

import (
	"context"
	"fmt"

	"github.com/fleetdesk/fleetcli/internal/api"
	"github.com/fleetdesk/fleetcli/internal/logging"
	"github.com/fleetdesk/fleetcli/internal/session"
)

// authAPI is the slice of the API client the auth service needs.
type authAPI interface {
	Login(ctx context.Context, username, password string) (*api.LoginResponse, error)
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Logout: best-effort server logout, then unconditional local logout.
//   - CurrentUser/IsAuthenticated: read the session state.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	CurrentUser() *session.User
	IsAuthenticated() bool
}

type authService struct {
	client   authAPI
	sessions *session.Manager
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session manager.
func NewAuthService(client authAPI, sessions *session.Manager, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log}
}

// Login authenticates and stores the resulting session. A backend that
// issues no refresh token still yields a logged-in (but non-refreshable)
// session.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	resp, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.sessions.Login(ctx, resp.User, resp.Token, resp.RefreshToken)
	return nil
}

// Logout tells the server the session ends, then clears local state. A
// failing logout endpoint never blocks the local logout.
func (a *authService) Logout(ctx context.Context) error {
	if a.sessions.IsAuthenticated() {
		if err := a.client.Logout(ctx); err != nil {
			a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
		}
	}
	a.sessions.Logout(ctx)
	return nil
}

func (a *authService) CurrentUser() *session.User {
	return a.sessions.CurrentUser()
}

func (a *authService) IsAuthenticated() bool {
	return a.sessions.IsAuthenticated()
}
