// Package storage opens the client's local SQLite database, applies the
// embedded migrations, and hands out the two persistence scopes: the durable
// local store and the session-scoped store. The session store mimics a
// browser tab's session storage: its contents survive a restart only while
// the session ID stays the same, and are wiped when a new session begins.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/andrisk/realhub/internal/client/migrations"
	"github.com/andrisk/realhub/internal/client/repositories/kvstore"
	"github.com/andrisk/realhub/internal/dbx"
	"github.com/andrisk/realhub/internal/logging"
)

// Stores bundles the opened database with its two key-value scopes.
type Stores struct {
	DB      *sql.DB
	Local   kvstore.Repository
	Session kvstore.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens dsn, migrates it, and resolves the session scope: if
// the recorded session ID differs from sessionID, the session store is
// wiped before use.
func InitDatabase(ctx context.Context, dsn string, sessionID string, log logging.Logger) (*Stores, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	if err := resolveSession(ctx, db, sessionID, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Stores{
		DB:      db,
		Local:   kvstore.NewSQLiteRepository(db, kvstore.LocalTable),
		Session: kvstore.NewSQLiteRepository(db, kvstore.SessionTable),
	}, nil
}

func resolveSession(ctx context.Context, db *sql.DB, sessionID string, log logging.Logger) error {
	var stored string
	err := db.QueryRowContext(ctx, `SELECT session_id FROM session_info WHERE id = 1`).Scan(&stored)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read session info: %w", err)
	}

	if stored == sessionID {
		return nil
	}

	if stored != "" {
		log.Debug(ctx, "new session, wiping session store", "previous", stored, "current", sessionID)
	}

	// the wipe and the new session ID must land together
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := kvstore.NewSQLiteRepository(tx, kvstore.SessionTable).Clear(ctx); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO session_info (id, session_id) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET session_id = excluded.session_id
		`, sessionID)
		if err != nil {
			return fmt.Errorf("failed to record session id: %w", err)
		}
		return nil
	})
}
