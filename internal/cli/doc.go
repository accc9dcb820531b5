// Package cli implements the interactive fleetcli shell: a small REPL over
// the auth and fleet services. Command handlers log their own errors; the
// REPL itself only routes input.
package cli
