package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fleetdesk/fleetcli/internal/api"
	"github.com/fleetdesk/fleetcli/internal/config"
	"github.com/fleetdesk/fleetcli/internal/logging"
	"github.com/fleetdesk/fleetcli/internal/services"
	"github.com/fleetdesk/fleetcli/internal/session"

	_ "modernc.org/sqlite"
)

// App wires the session manager, API client, and services together and
// drives the interactive shell.
type App struct {
	config   *config.Config
	auth     services.AuthService
	fleet    services.FleetService
	sessions *session.Manager
	reader   *bufio.Reader
	log      logging.Logger
}

// NewApp builds the object graph. Construction order matters: the session
// manager exists before the API client, so the client's session callbacks
// always have a live listener.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var store session.Store
	switch cfg.SessionStoreBackend {
	case config.StoreSQLite:
		db, err := session.OpenDB(ctx, cfg.SessionStorePath)
		if err != nil {
			return nil, fmt.Errorf("initializing session store: %w", err)
		}
		store = session.NewSQLiteStore(db)
	default:
		store = session.NewFileStore(cfg.SessionStorePath)
	}

	sessions := session.NewManager(store, cfg.RefreshBuffer, log)
	apiClient := api.NewClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, sessions, sessions, log)
	sessions.SetRefreshFunc(apiClient.Refresher().Refresh)
	sessions.SetOnChange(func(authenticated bool) {
		if !authenticated {
			fmt.Println("Session ended, please log in again.")
		}
	})

	sessions.Initialize(ctx)

	return &App{
		config:   cfg,
		auth:     services.NewAuthService(apiClient, sessions, log),
		fleet:    services.NewFleetService(apiClient),
		sessions: sessions,
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
	}, nil
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close cancels any pending refresh timer.
func (a *App) Close() {
	a.sessions.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.sessions.CurrentUser(); user != nil {
		return user.Username
	}
	return "not logged in"
}
