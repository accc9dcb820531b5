package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/fleetdesk/fleetcli/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	want := &Session{
		User:         &User{ID: "u1", Username: "alice", Role: "dispatcher"},
		AccessToken:  "A1",
		RefreshToken: "R1",
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteStore_LoadCorrupt(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)

	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES(?,?)`,
		common.SessionStorageKey, []byte("not json"))
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, common.ErrCorruptRecord)
}

func TestSQLiteStore_SaveUpserts(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{User: &User{ID: "u1"}, AccessToken: "A1", RefreshToken: "R1"}))
	require.NoError(t, store.Save(ctx, &Session{User: &User{ID: "u1"}, AccessToken: "A2", RefreshToken: "R2"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "A2", got.AccessToken)
}

func TestSQLiteStore_ClearIsIdempotent(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{User: &User{ID: "u1"}, AccessToken: "A1", RefreshToken: "R1"}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}
