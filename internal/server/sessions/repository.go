package sessions

import (
	"context"
	"time"

	"github.com/andrisk/realhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, accountID string, validity time.Duration) (*models.Session, error)
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
