package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fleetdesk/fleetcli/internal/common"
	"github.com/fleetdesk/fleetcli/internal/logging"
	"github.com/stretchr/testify/require"
)

func newNopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeTokens is a mutable TokenSource for tests.
type fakeTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func (f *fakeTokens) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access
}

func (f *fakeTokens) RefreshToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refresh
}

func (f *fakeTokens) set(access, refresh string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = access
	f.refresh = refresh
}

// fakeUpdater records session mutations; by default it forwards token
// updates into the paired fakeTokens, mimicking the session manager.
type fakeUpdater struct {
	mu      sync.Mutex
	tokens  *fakeTokens
	updates [][2]string
	logouts int
}

func (f *fakeUpdater) OnTokensUpdated(ctx context.Context, accessToken, refreshToken string) {
	f.mu.Lock()
	f.updates = append(f.updates, [2]string{accessToken, refreshToken})
	f.mu.Unlock()
	if f.tokens != nil {
		f.tokens.set(accessToken, refreshToken)
	}
}

func (f *fakeUpdater) OnLogout(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
}

func (f *fakeUpdater) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func (f *fakeUpdater) logoutCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logouts
}

func TestRefresher_ConcurrentCallersShareOneCall(t *testing.T) {
	tokens := &fakeTokens{access: "A1", refresh: "R1"}
	updater := &fakeUpdater{tokens: tokens}

	var calls atomic.Int32
	call := func(ctx context.Context, refreshToken string) (string, string, error) {
		calls.Add(1)
		// Hold the call open long enough for every caller to join it.
		time.Sleep(200 * time.Millisecond)
		return "A2", "R2", nil
	}

	r := NewRefresher(tokens, updater, call, newNopLogger())

	const n = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = r.Refresh(context.Background())
		}(i)
	}
	close(start)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load(), "expected a single refresh network call")
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
	}
	require.Equal(t, "A2", tokens.AccessToken(), "waiters must observe the refreshed token")
	require.Equal(t, 1, updater.updateCount())
}

func TestRefresher_SurvivesInitiatorCancellation(t *testing.T) {
	tokens := &fakeTokens{access: "A1", refresh: "R1"}
	updater := &fakeUpdater{tokens: tokens}

	// The fake honors cancellation, so a shared call running on the
	// initiator's context would fail once that context is cancelled.
	call := func(ctx context.Context, refreshToken string) (string, string, error) {
		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return "A2", "R2", nil
		}
	}

	r := NewRefresher(tokens, updater, call, newNopLogger())

	initiatorCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var err1, err2 error
	wg.Add(2)
	go func() {
		defer wg.Done()
		err1 = r.Refresh(initiatorCtx)
	}()
	time.Sleep(20 * time.Millisecond) // let the first caller start the flight
	go func() {
		defer wg.Done()
		err2 = r.Refresh(context.Background())
	}()
	time.AfterFunc(50*time.Millisecond, cancel)
	wg.Wait()

	require.NoError(t, err1, "the shared outcome must not depend on the initiator's context")
	require.NoError(t, err2)
	require.Equal(t, "A2", tokens.AccessToken())
	require.Equal(t, 1, updater.updateCount())
}

func TestRefresher_NoRefreshToken(t *testing.T) {
	tokens := &fakeTokens{access: "A1"}
	updater := &fakeUpdater{tokens: tokens}

	var calls atomic.Int32
	call := func(ctx context.Context, refreshToken string) (string, string, error) {
		calls.Add(1)
		return "A2", "R2", nil
	}

	r := NewRefresher(tokens, updater, call, newNopLogger())

	err := r.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrRefreshUnavailable)
	require.Equal(t, int32(0), calls.Load())
	require.Equal(t, 0, updater.updateCount())
}

func TestRefresher_FailurePropagatesWithoutPersisting(t *testing.T) {
	tokens := &fakeTokens{access: "A1", refresh: "R1"}
	updater := &fakeUpdater{tokens: tokens}

	wantErr := errors.New("refresh endpoint down")
	call := func(ctx context.Context, refreshToken string) (string, string, error) {
		return "", "", wantErr
	}

	r := NewRefresher(tokens, updater, call, newNopLogger())

	err := r.Refresh(context.Background())
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, updater.updateCount())
	require.Equal(t, 0, updater.logoutCount(), "refresher itself never forces logout")
	require.Equal(t, "A1", tokens.AccessToken())
}

func TestRefresher_MarkerClearsAfterSettlement(t *testing.T) {
	tokens := &fakeTokens{access: "A1", refresh: "R1"}
	updater := &fakeUpdater{tokens: tokens}

	var calls atomic.Int32
	call := func(ctx context.Context, refreshToken string) (string, string, error) {
		n := calls.Add(1)
		return "A2", "R" + string(rune('1'+n)), nil
	}

	r := NewRefresher(tokens, updater, call, newNopLogger())

	require.NoError(t, r.Refresh(context.Background()))
	require.NoError(t, r.Refresh(context.Background()))
	require.Equal(t, int32(2), calls.Load(), "a settled refresh must not block the next one")
}
