// Package cache provides pluggable caching for computed layouts.
//
// A full layout pass is a pure function of the roster and the layout
// configuration, so its result can be cached keyed by a content hash of
// both. Highlight or filter changes downstream never touch geometry and
// therefore never invalidate the cache.
//
// Three backends are provided:
//   - FileCache: XDG-style on-disk cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching entirely
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default expiration for cached layouts.
// Layouts are content-addressed, so long TTLs are safe; the TTL only
// bounds disk usage for rosters that are never seen again.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is the interface implemented by all cache backends.
// Implementations must treat a missing key as (nil, false, nil), not an error.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with the given TTL. A zero TTL means
	// the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the value for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// LayoutKey builds the cache key for a computed layout from the roster
// content hash and the layout configuration hash.
func LayoutKey(rosterHash, configHash string) string {
	return hashKey("layout", rosterHash, configHash)
}
