// Package session owns the client's authenticated session: the durable
// record holding the current user and token pair, the manager that is the
// single writer of that record, and the proactive refresh scheduler that
// keeps the access token fresh.
package session

// User is the authenticated identity as returned by the login endpoint.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the durable session record.
//
// Invariant: AccessToken and RefreshToken are both present or both absent,
// and User is non-nil iff an access token is held. The one sanctioned
// exception is a backend that issues no refresh token at login; such a
// session is authenticated but cannot be refreshed.
type Session struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// IsAuthenticated reports whether the session holds an identity.
func (s *Session) IsAuthenticated() bool {
	return s.User != nil
}
