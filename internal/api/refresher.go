package api

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetcli/internal/common"
	"github.com/fleetdesk/fleetcli/internal/logging"
	"golang.org/x/sync/singleflight"
)

// refreshKey is the single-flight key; the whole process shares one session,
// so there is exactly one refresh to coordinate.
const refreshKey = "refresh"

// refreshExchangeTimeout bounds the shared refresh call, which runs detached
// from any single caller's context.
const refreshExchangeTimeout = 10 * time.Second

// refreshCall exchanges a refresh token for a new token pair over the wire.
type refreshCall func(ctx context.Context, refreshToken string) (accessToken, refreshToken2 string, err error)

// Refresher guarantees at most one refresh network call in flight at a
// time. Concurrent callers join the in-flight call and all settle with the
// same outcome. On success the new pair is published through the updater
// before any waiter resumes, so retried requests observe the new token.
//
// On failure nothing is persisted and nothing is cleared here: forcing a
// logout is the caller's explicit decision.
type Refresher struct {
	group   singleflight.Group
	tokens  TokenSource
	updater SessionUpdater
	call    refreshCall
	log     logging.Logger
}

func NewRefresher(tokens TokenSource, updater SessionUpdater, call refreshCall, log logging.Logger) *Refresher {
	return &Refresher{tokens: tokens, updater: updater, call: call, log: log}
}

// Refresh triggers, or joins, the in-flight token refresh.
func (r *Refresher) Refresh(ctx context.Context) error {
	_, err, shared := r.group.Do(refreshKey, func() (any, error) {
		// The outcome is shared by every joined caller, so the exchange
		// must not die with the initiating caller's context.
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshExchangeTimeout)
		defer cancel()

		refreshToken := r.tokens.RefreshToken()
		if refreshToken == "" {
			return nil, common.ErrRefreshUnavailable
		}

		accessToken, newRefreshToken, err := r.call(callCtx, refreshToken)
		if err != nil {
			return nil, err
		}

		r.updater.OnTokensUpdated(callCtx, accessToken, newRefreshToken)
		return nil, nil
	})
	if shared {
		r.log.Debug(ctx, "joined in-flight token refresh")
	}
	return err
}
