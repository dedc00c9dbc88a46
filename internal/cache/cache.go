package cache

import "context"

// EvictCallback is called when an entry is evicted from the cache.
// Not all providers support eviction callbacks (Redis relies on server-side expiry).
type EvictCallback func(key string, value []byte)

// Cache is a byte-oriented key-value store with bounded lifetime entries.
// Implementations may keep entries in memory or in an external backend like Redis/Valkey.
// Lookups never fail: backend errors are logged and reported as misses.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found, or nil and false if not.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with the given key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte)

	// Contains checks whether a key exists without refreshing it.
	Contains(ctx context.Context, key string) bool

	// Len returns the number of entries currently in the cache.
	Len() int

	// Close releases any resources held by the cache.
	Close() error
}
