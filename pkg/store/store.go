// Package store defines the persisted key-value namespace that holds every
// marketplace entity, and the change-notification hub that keeps mounted
// views in sync with it.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
// Callers treat it as "render the seed/empty state", never as a failure.
var ErrNotFound = errors.New("store: key not found")

// Namespace keys. Values are JSON blobs, one entity collection per key.
const (
	KeySession      = "marketplace:session"
	KeyLanguage     = "marketplace:language"
	KeyCredentials  = "marketplace:credentials"
	KeyCatalog      = "marketplace:catalog"
	KeyOrders       = "marketplace:orders"
	KeyAdminProfile = "marketplace:profile:admin"
	KeyUserProfile  = "marketplace:profile:user"
)

// Store is the key-value namespace. Implementations marshal values to JSON
// and publish every committed Set/Delete on the notification hub so that
// subscribers re-read rather than trust stale copies.
type Store interface {
	// Get unmarshals the value at key into dest, or returns ErrNotFound.
	Get(ctx context.Context, key string, dest interface{}) error
	// Set marshals value and overwrites key, then publishes the change.
	Set(ctx context.Context, key string, value interface{}) error
	// Delete removes key, then publishes the change. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error
	// Subscribe registers fn to run after every committed change to key.
	// The returned cancel func removes the subscription.
	Subscribe(key string, fn func()) (cancel func())
}
