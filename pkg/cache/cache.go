package cache

import "context"

// Cache is a string-keyed in-memory store with per-entry TTL and a
// size-bounded, oldest-first eviction policy.
type Cache[V any] interface {
	// Get returns the value for key and true if present (and not expired).
	Get(key string) (V, bool)

	// Set stores the value for key using the cache's default TTL (if any).
	Set(key string, value V)

	// SetWithTTL stores the value for key with a custom ttl. ttlSeconds <= 0 means no expiry.
	SetWithTTL(key string, value V, ttlSeconds int)

	// Delete removes the key from the cache and reports whether it was present.
	Delete(key string) bool

	// Has reports whether key is present and not expired. Same expiry semantics as Get.
	Has(key string) bool

	// Keys returns all keys whose entries are not expired at the time of the call.
	Keys() []string

	// Len returns the number of items physically stored. May include expired
	// entries that have not been swept yet.
	Len() int

	// GetAll returns a copy of all non-expired cache contents.
	GetAll() map[string]V

	// Clear cancels all pending expirations and empties the cache.
	Clear()

	// GetOrSet returns the cached value for key, or runs producer and caches
	// its result with the default TTL. A producer error is returned unchanged
	// and nothing is cached.
	GetOrSet(ctx context.Context, key string, producer Producer[V]) (V, error)

	// GetOrSetWithTTL is GetOrSet with a custom ttl for the produced value.
	GetOrSetWithTTL(ctx context.Context, key string, producer Producer[V], ttlSeconds int) (V, error)

	// Stats returns a snapshot of the cache's current state.
	Stats() Stats

	// SetMaxSize updates the size bound and immediately enforces it.
	SetMaxSize(n int) error

	// SetDefaultTTL updates the default TTL used by Set. ttlSeconds <= 0 means no expiry.
	SetDefaultTTL(ttlSeconds int)

	// Destroy stops the cleanup daemon, cancels all pending expirations and
	// empties the cache. Idempotent; a destroyed cache behaves as permanently empty.
	Destroy()
}

// Producer computes a value for a key on cache miss. It may block; it is
// called outside the cache's lock.
type Producer[V any] func(ctx context.Context) (V, error)
