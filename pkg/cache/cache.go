// Package cache stores rendered artifacts and layouts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per key under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// All backends take a TTL on Set; a zero TTL never expires.
//
// # Keys
//
// Keys are derived by a [Keyer] from the SHA-256 of the input tree plus every
// option that affects the output, so a changed option never serves a stale
// artifact:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(treeJSON), cache.ArtifactKeyOpts{Format: "svg", Width: 512})
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired key is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero keeps it until deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
