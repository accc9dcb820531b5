// Package config loads runtime configuration for the fleetcli client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   session store backend: file or sqlite
//	-f string   session store path (file path or SQLite DSN)
//	-b int      proactive refresh buffer (seconds)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "60s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "https://fleet.example.com/api",
//	  "session_store_backend": "sqlite",
//	  "session_store_path": "fleetcli.db",
//	  "refresh_buffer": "60s",
//	  "request_timeout": "15s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
