package session

import (
	"context"
	"sync"
	"time"

	"github.com/fleetdesk/fleetcli/internal/logging"
)

// refreshCallTimeout bounds a proactive refresh attempt; the timer fires
// with no caller context to inherit a deadline from.
const refreshCallTimeout = 10 * time.Second

// Scheduler arms a single one-shot timer that fires a refresh attempt
// shortly before the access token expires. At most one timer is armed at a
// time: Schedule always cancels the previous one before rearming.
//
// A failed attempt is logged and swallowed. The reactive 401 path owns
// terminal failure handling; forcing a logout from here would turn a
// transient refresh-endpoint blip into a lost session while the access
// token may still be valid.
type Scheduler struct {
	mu      sync.Mutex
	timer   *time.Timer
	buffer  time.Duration
	refresh func(ctx context.Context) error
	log     logging.Logger
}

// NewScheduler returns a scheduler firing refresh one buffer ahead of the
// expiry instants handed to Schedule.
func NewScheduler(buffer time.Duration, refresh func(ctx context.Context) error, log logging.Logger) *Scheduler {
	return &Scheduler{buffer: buffer, refresh: refresh, log: log}
}

// Schedule cancels any armed timer and arms a new one firing at
// expiry − buffer. An instant already inside the buffer fires immediately.
func (s *Scheduler) Schedule(expiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	delay := time.Until(expiry) - s.buffer
	if delay < 0 {
		delay = 0
	}
	s.log.Debug(context.Background(), "scheduling token refresh", "delay", delay)
	s.timer = time.AfterFunc(delay, s.fire)
}

// Cancel disarms the timer. Safe to call when nothing is armed.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *Scheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshCallTimeout)
	defer cancel()

	if err := s.refresh(ctx); err != nil {
		s.log.Warn(ctx, "proactive token refresh failed", "error", err)
	}
}
