package api

import "context"

// SessionUpdater lets the transport layer request session mutations without
// depending on the session owner. The session manager implements it; the
// transport never writes the session store itself.
type SessionUpdater interface {
	// OnTokensUpdated delivers a freshly issued token pair.
	OnTokensUpdated(ctx context.Context, accessToken, refreshToken string)

	// OnLogout signals a terminal authentication failure; the session owner
	// clears its state and the UI returns to the login boundary.
	OnLogout(ctx context.Context)
}

// TokenSource exposes read access to the current token pair. Reading at
// request-build time (rather than capturing tokens) is what lets a retried
// request pick up the post-refresh access token.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
}
