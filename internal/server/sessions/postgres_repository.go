package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/andrisk/realhub/internal/common"
	"github.com/andrisk/realhub/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, accountID string, validity time.Duration) (*models.Session, error) {

	query :=
		`INSERT INTO sessions (account_id, expires_at)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	session := &models.Session{
		AccountID: accountID,
		ExpiresAt: time.Now().Add(validity),
	}

	err := r.db.QueryRowContext(ctx, query, accountID, session.ExpiresAt).
		Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return session, nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	query :=
		`SELECT id, account_id, expires_at, created_at FROM sessions
		 WHERE id = $1
		 `

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&session.ID, &session.AccountID, &session.ExpiresAt, &session.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return session, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

// DeleteExpired removes sessions past their expiry and reports how many
// rows went away.
func (r *PostgresRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < now()`

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return res.RowsAffected()
}
