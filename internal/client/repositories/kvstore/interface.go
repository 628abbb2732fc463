// Package kvstore provides the key-value repositories backing the client's
// two persistence scopes: the durable local store and the session-scoped
// store that is wiped when a new session begins.
package kvstore

import (
	"context"
)

type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
