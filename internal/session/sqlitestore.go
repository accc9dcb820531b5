package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fleetdesk/fleetcli/internal/common"
)

// SQLiteStore keeps the session record as one JSON blob in the metadata
// table, under the fixed key common.SessionStorageKey.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (r *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, common.SessionStorageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", common.SessionStorageKey, err)
	}

	var s Session
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrCorruptRecord, err)
	}
	return &s, nil
}

// Save stores the full record in a single UPSERT, keeping the token pair
// atomic in durable state.
func (r *SQLiteStore) Save(ctx context.Context, s *Session) error {
	value, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, common.SessionStorageKey, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", common.SessionStorageKey, err)
	}
	return nil
}

func (r *SQLiteStore) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key = ?`, common.SessionStorageKey)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", common.SessionStorageKey, err)
	}
	return nil
}
