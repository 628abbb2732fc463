// Package catalog provides the typed collection stores for the marketplace
// data cached locally: properties, messages, the location taxonomy, and
// agent ratings. Each collection lives under one fixed local-store key as a
// JSON array whose timestamps stay revivable by the date-aware decoder.
//
// The cached catalog is what keeps the app usable while the identity
// provider is unreachable.
package catalog

import (
	"context"
	"fmt"

	"github.com/andrisk/realhub/internal/client/models"
	"github.com/andrisk/realhub/internal/client/repositories/kvstore"
	"github.com/andrisk/realhub/internal/jsonx"
	"github.com/andrisk/realhub/internal/logging"
)

// Storage keys of the cached collections.
const (
	PropertiesKey = "realhub.properties"
	MessagesKey   = "realhub.messages"
	LocationsKey  = "realhub.locations"
	RatingsKey    = "realhub.ratings"
)

// Collection is a typed view over one local-store key.
type Collection[T any] struct {
	kv  kvstore.Repository
	key string
	log logging.Logger
}

func NewCollection[T any](kv kvstore.Repository, key string, log logging.Logger) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, log: log}
}

// List returns all items. Corrupt stored JSON degrades to an empty
// collection with a log line, never an error.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	data, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.key, err)
	}
	if data == nil {
		return nil, nil
	}

	var items []T
	if err := jsonx.Unmarshal(data, &items); err != nil {
		c.log.Warn(ctx, "discarding corrupt collection", "key", c.key, "error", err)
		return nil, nil
	}
	return items, nil
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	data, err := jsonx.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}

// Append adds one item to the collection.
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	return c.Save(ctx, append(items, item))
}

func NewProperties(kv kvstore.Repository, log logging.Logger) *Collection[models.Property] {
	return NewCollection[models.Property](kv, PropertiesKey, log)
}

func NewMessages(kv kvstore.Repository, log logging.Logger) *Collection[models.Message] {
	return NewCollection[models.Message](kv, MessagesKey, log)
}

func NewLocations(kv kvstore.Repository, log logging.Logger) *Collection[models.Location] {
	return NewCollection[models.Location](kv, LocationsKey, log)
}

func NewRatings(kv kvstore.Repository, log logging.Logger) *Collection[models.Rating] {
	return NewCollection[models.Rating](kv, RatingsKey, log)
}
