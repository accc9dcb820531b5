package session

import (
	"context"
	"sync"
	"time"

	"github.com/fleetdesk/fleetcli/internal/logging"
)

// Manager is the single owner of the client session. Every mutation of the
// durable record goes through its Login/Logout/UpdateTokens operations;
// the transport and scheduler only read through its accessors or request a
// mutation via the updater callbacks.
//
// A failing store never fails an operation: the session then simply lives
// in memory for the rest of the process.
type Manager struct {
	mu        sync.RWMutex
	store     Store
	session   Session
	refresh   func(ctx context.Context) error
	onChange  func(authenticated bool)
	scheduler *Scheduler
	log       logging.Logger
}

// NewManager builds a manager persisting to store, with proactive refresh
// firing one buffer ahead of token expiry.
func NewManager(store Store, buffer time.Duration, log logging.Logger) *Manager {
	m := &Manager{store: store, log: log}
	m.scheduler = NewScheduler(buffer, m.proactiveRefresh, log)
	return m
}

// SetRefreshFunc wires the refresh operation the scheduler fires. It is set
// after construction because the transport that performs the refresh needs
// the manager as its token source.
func (m *Manager) SetRefreshFunc(fn func(ctx context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refresh = fn
}

// SetOnChange registers a callback invoked whenever the session transitions
// between authenticated and unauthenticated, including transitions forced
// by the transport layer.
func (m *Manager) SetOnChange(fn func(authenticated bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Initialize hydrates the session from the store. A missing record starts
// an unauthenticated session; a malformed one is cleared and does the same.
// No error escapes this boundary.
func (m *Manager) Initialize(ctx context.Context) {
	s, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "clearing unreadable session record", "error", err)
		m.clearStore(ctx)
		return
	}
	if s == nil {
		return
	}
	if s.User == nil || s.AccessToken == "" {
		m.log.Warn(ctx, "clearing incomplete session record")
		m.clearStore(ctx)
		return
	}

	m.mu.Lock()
	m.session = *s
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", s.User.Username)
	m.rearm()
	m.notify(true)
}

// Login replaces the session with a freshly authenticated one. The full
// record is written in one durable operation.
func (m *Manager) Login(ctx context.Context, user *User, accessToken, refreshToken string) {
	s := Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}

	if err := m.store.Save(ctx, &s); err != nil {
		m.log.Warn(ctx, "session not persisted", "error", err)
	}

	m.mu.Lock()
	m.session = s
	m.mu.Unlock()

	m.rearm()
	m.notify(true)
}

// Logout cancels any pending refresh timer, clears durable storage, and
// resets the in-memory state. Calling it on an already logged-out session
// is a no-op beyond the (safe) clearing.
func (m *Manager) Logout(ctx context.Context) {
	m.scheduler.Cancel()
	m.clearStore(ctx)

	m.mu.Lock()
	wasAuthenticated := m.session.User != nil
	m.session = Session{}
	m.mu.Unlock()

	if wasAuthenticated {
		m.log.Info(ctx, "logged out")
		m.notify(false)
	}
}

// UpdateTokens swaps the token pair of the current session, keeping the
// user. It is a no-op when no user is set: a refresh result arriving after
// logout must not resurrect the session. Both tokens are required, so the
// pairing invariant cannot be broken halfway.
func (m *Manager) UpdateTokens(ctx context.Context, accessToken, refreshToken string) {
	if accessToken == "" || refreshToken == "" {
		return
	}

	m.mu.Lock()
	if m.session.User == nil {
		m.mu.Unlock()
		m.log.Debug(ctx, "dropping token update for logged-out session")
		return
	}
	m.session.AccessToken = accessToken
	m.session.RefreshToken = refreshToken
	s := m.session
	m.mu.Unlock()

	if err := m.store.Save(ctx, &s); err != nil {
		m.log.Warn(ctx, "refreshed session not persisted", "error", err)
	}
	m.rearm()
}

// Close releases the manager's timer. The session record is left intact.
func (m *Manager) Close() {
	m.scheduler.Cancel()
}

// OnTokensUpdated implements the transport's session updater.
func (m *Manager) OnTokensUpdated(ctx context.Context, accessToken, refreshToken string) {
	m.UpdateTokens(ctx, accessToken, refreshToken)
}

// OnLogout implements the transport's session updater.
func (m *Manager) OnLogout(ctx context.Context) {
	m.Logout(ctx)
}

// AccessToken returns the current access token, empty when logged out.
// The transport re-reads it when retrying after a refresh.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

// RefreshToken returns the current refresh token, empty when logged out or
// when the backend issued none.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.RefreshToken
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.User == nil {
		return nil
	}
	u := *m.session.User
	return &u
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.IsAuthenticated()
}

// rearm reschedules the proactive refresh for the current token. Without a
// refresh token, or without a readable expiry claim, scheduling is skipped
// and the reactive 401 path is the fallback.
func (m *Manager) rearm() {
	m.mu.RLock()
	accessToken := m.session.AccessToken
	refreshToken := m.session.RefreshToken
	m.mu.RUnlock()

	if accessToken == "" || refreshToken == "" {
		m.scheduler.Cancel()
		return
	}
	expiry, ok := TokenExpiry(accessToken)
	if !ok {
		m.log.Debug(context.Background(), "access token has no readable expiry, relying on reactive refresh")
		m.scheduler.Cancel()
		return
	}
	m.scheduler.Schedule(expiry)
}

func (m *Manager) proactiveRefresh(ctx context.Context) error {
	m.mu.RLock()
	fn := m.refresh
	refreshToken := m.session.RefreshToken
	m.mu.RUnlock()

	if fn == nil || refreshToken == "" {
		return nil
	}
	return fn(ctx)
}

func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "clearing session record failed", "error", err)
	}
}

func (m *Manager) notify(authenticated bool) {
	m.mu.RLock()
	fn := m.onChange
	m.mu.RUnlock()
	if fn != nil {
		fn(authenticated)
	}
}
