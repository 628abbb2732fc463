package db

import (
	"context"
	"database/sql"

	"github.com/andrisk/realhub/internal/server/accounts"
	"github.com/andrisk/realhub/internal/server/sessions"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
	Sessions() sessions.Repository
}
