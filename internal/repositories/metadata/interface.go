// Package metadata persists opaque values under string keys. The user store
// keeps its whole record set as a single JSON blob under one key.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
