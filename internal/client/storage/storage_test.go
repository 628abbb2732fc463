package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisk/realhub/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "realhub.db")
	ctx := context.Background()

	stores, err := InitDatabase(ctx, dsn, "session-1", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.DB.Close() })

	require.NoError(t, stores.Local.Set(ctx, "k", []byte("v")))
	require.NoError(t, stores.Session.Set(ctx, "k", []byte("v")))
}

func TestInitDatabase_SessionStoreSurvivesSameSession(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "realhub.db")
	ctx := context.Background()

	stores, err := InitDatabase(ctx, dsn, "session-1", discardLogger())
	require.NoError(t, err)
	require.NoError(t, stores.Session.Set(ctx, "nav", []byte("state")))
	require.NoError(t, stores.DB.Close())

	// same session ID: a reload within the tab
	stores, err = InitDatabase(ctx, dsn, "session-1", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.DB.Close() })

	got, err := stores.Session.Get(ctx, "nav")
	require.NoError(t, err)
	assert.Equal(t, []byte("state"), got)
}

func TestInitDatabase_NewSessionWipesSessionStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "realhub.db")
	ctx := context.Background()

	stores, err := InitDatabase(ctx, dsn, "session-1", discardLogger())
	require.NoError(t, err)
	require.NoError(t, stores.Session.Set(ctx, "nav", []byte("state")))
	require.NoError(t, stores.Local.Set(ctx, "users", []byte("[]")))
	require.NoError(t, stores.DB.Close())

	stores, err = InitDatabase(ctx, dsn, "session-2", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.DB.Close() })

	got, err := stores.Session.Get(ctx, "nav")
	require.NoError(t, err)
	assert.Nil(t, got, "session store must be wiped for a new session")

	got, err = stores.Local.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got, "local store must survive session changes")
}
