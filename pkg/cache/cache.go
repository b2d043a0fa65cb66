// Package cache stores derived artifacts between runs.
//
// Rendering the curved-space source image and laying out the glue forest
// diagram are the slow parts of an export. Both depend only on the cell
// complex and its glue state, so their encoded bytes are cached under keys
// built from a content hash of that state.
//
// Two implementations are provided: [FileCache] for the CLI, which keeps
// one JSON entry per key under the user cache directory, and [NullCache],
// which never stores anything.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Cache lifetimes.
const (
	TTLSource = 7 * 24 * time.Hour
	TTLForest = 24 * time.Hour
)

// Hash returns the hex SHA-256 of data. Topology hashes and file cache
// paths are built from it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache never stores anything. It backs --no-cache and the commands
// that only read a net.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }
