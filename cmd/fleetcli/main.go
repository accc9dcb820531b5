package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/fleetdesk/fleetcli/internal/cli"
	"github.com/fleetdesk/fleetcli/internal/config"
	"github.com/fleetdesk/fleetcli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
