// Package common contains shared constants and sentinel errors used across
// fleetcli components.
package common

// SessionStorageKey is the metadata row key the SQLite-backed store keeps
// the durable session record under.
const SessionStorageKey = "session"

// RequestIDHeaderName is the HTTP header carrying a per-request correlation ID.
const RequestIDHeaderName = "X-Request-Id"
