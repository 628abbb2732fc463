// Package directory implements the known-users directory: a locally
// persisted cache of user identity records, independent of live session
// state. The remote identity provider remains the source of truth for who
// is logged in; the directory only enriches identities across restarts.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrisk/realhub/internal/client/models"
	"github.com/andrisk/realhub/internal/client/repositories/kvstore"
	"github.com/andrisk/realhub/internal/common"
	"github.com/andrisk/realhub/internal/jsonx"
	"github.com/andrisk/realhub/internal/logging"
)

// StorageKey is the local-store key holding the serialized directory.
const StorageKey = "realhub.users"

type Store struct {
	kv  kvstore.Repository
	log logging.Logger
}

func NewStore(kv kvstore.Repository, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// List returns all directory entries. Corrupt stored JSON is discarded
// silently: the directory degrades to empty and the damage is only logged.
func (s *Store) List(ctx context.Context) ([]models.UserIdentity, error) {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var users []models.UserIdentity
	if err := jsonx.Unmarshal(data, &users); err != nil {
		s.log.Warn(ctx, "discarding corrupt user directory", "error", err)
		return nil, nil
	}
	return users, nil
}

// FindByEmail returns the entry matching email (case-insensitive), or
// common.ErrorNotFound.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.UserIdentity, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

// Append adds user to the directory. Entries are never removed here; an
// explicit admin delete is a separate operation.
func (s *Store) Append(ctx context.Context, user models.UserIdentity) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)

	data, err := jsonx.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize user directory: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to save user directory: %w", err)
	}
	return nil
}
