package config

import (
	"flag"
	"os"
	"time"

	"github.com/fleetdesk/fleetcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-s string   session store backend: file or sqlite
//	-f string   session store path (file path or SQLite DSN)
//	-b int      refresh buffer in seconds
//	-t int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-f", "-b", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	fs.StringVar(&cfg.SessionStoreBackend, "s", cfg.SessionStoreBackend, "session store backend (file|sqlite)")
	fs.StringVar(&cfg.SessionStorePath, "f", cfg.SessionStorePath, "session store path")
	refreshBuffer := fs.Int("b", int(cfg.RefreshBuffer.Seconds()), "refresh buffer (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshBuffer = time.Duration(*refreshBuffer) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
