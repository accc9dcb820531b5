package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fleetdesk/fleetcli/internal/migrations"
	"github.com/pressly/goose/v3"
)

// OpenDB opens the local SQLite database at dsn and applies the embedded
// migrations. The returned handle backs a SQLiteStore.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating session db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
