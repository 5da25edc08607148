package service

import (
	"context"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned when a key does not exist in the device storage.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the process-wide device storage the session token and the
// search keyword live in.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
