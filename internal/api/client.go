// Package api implements the HTTP client for the fleet-management backend:
// bearer authentication, typed failures, reactive refresh-and-retry on 401,
// and hard logout on terminal auth failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fleetdesk/fleetcli/internal/common"
	"github.com/fleetdesk/fleetcli/internal/logging"
	"github.com/google/uuid"
)

// Client wraps *http.Client with the session-aware request contract.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	updater   SessionUpdater
	refresher *Refresher
	log       logging.Logger
}

// NewClient builds a client for the API rooted at baseURL. tokens and
// updater are both typically the session manager; the client only reads
// tokens and requests mutations, never writes session state directly.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, updater SessionUpdater, log logging.Logger) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		updater: updater,
		log:     log,
	}
	c.refresher = NewRefresher(tokens, updater, c.refreshCall, log)
	return c
}

// Refresher exposes the de-duplicated refresh operation, e.g. for the
// proactive scheduler.
func (c *Client) Refresher() *Refresher {
	return c.refresher
}

// do runs one API call. Authenticated requests that fail with 401 trigger
// (or join) a token refresh and are resent exactly once with the new token;
// the retry's outcome is final. A failed refresh, a 401 on the retry, or
// any 403 ends the session via the updater.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = b
	}

	status, respBody, err := c.send(ctx, method, path, payload, authenticated)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && authenticated {
		if err := c.refresher.Refresh(ctx); err != nil {
			c.log.Warn(ctx, "token refresh failed, ending session", "error", err)
			c.updater.OnLogout(ctx)
			return fmt.Errorf("token refresh: %w", common.ErrUnauthorized)
		}

		status, respBody, err = c.send(ctx, method, path, payload, authenticated)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			// Refreshed token rejected: terminal, no second cycle.
			c.updater.OnLogout(ctx)
			return common.ErrUnauthorized
		}
	}

	return c.handle(ctx, status, respBody, out, authenticated)
}

// send builds and executes a single HTTP request. The access token is read
// at build time so a retry picks up the pair current after refresh settled.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, authenticated bool) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if authenticated {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// handle converts a settled response into the caller-facing outcome.
func (c *Client) handle(ctx context.Context, status int, body []byte, out any, authenticated bool) error {
	switch {
	case status == http.StatusUnauthorized:
		// Only reachable for unauthenticated calls (e.g. bad login
		// credentials): not a session event.
		return common.ErrUnauthorized

	case status == http.StatusForbidden:
		// A valid-but-insufficient token will not become sufficient by
		// refreshing. Treated as session-terminal across the board.
		if authenticated {
			c.log.Warn(ctx, "authorization failure, ending session")
			c.updater.OnLogout(ctx)
		}
		return common.ErrForbidden

	case status >= 200 && status < 300:
		if out == nil || status == http.StatusNoContent || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil

	default:
		return newAPIError(status, body)
	}
}
