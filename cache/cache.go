package cache

import (
	"context"
	"errors"
)

// ErrNotFound - this error is returned if the requested key
// is not present on cache
var ErrNotFound = errors.New("key not found")

// Cache - Key/Value cache of logo references. Entries never expire.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// Clear removes every entry owned by the cache
	Clear(ctx context.Context) error
}
