package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// SingleFlight wraps a TTLCache so that concurrent GetOrSet misses on the
// same key run the producer once and share the result. The underlying cache
// deliberately gives no such guarantee; wrap it when producers are expensive
// enough that duplicate work matters.
type SingleFlight[V any] struct {
	*TTLCache[V]
	group singleflight.Group
}

// NewSingleFlight wraps c with per-key deduplication of GetOrSet calls.
func NewSingleFlight[V any](c *TTLCache[V]) *SingleFlight[V] {
	return &SingleFlight[V]{TTLCache: c}
}

// GetOrSet is like TTLCache.GetOrSet, but concurrent misses on the same key
// share one producer invocation.
func (s *SingleFlight[V]) GetOrSet(ctx context.Context, key string, producer Producer[V]) (V, error) {
	return s.do(key, func() (V, error) {
		return s.TTLCache.GetOrSet(ctx, key, producer)
	})
}

// GetOrSetWithTTL is like TTLCache.GetOrSetWithTTL with shared producer
// invocations per key.
func (s *SingleFlight[V]) GetOrSetWithTTL(ctx context.Context, key string, producer Producer[V], ttlSeconds int) (V, error) {
	return s.do(key, func() (V, error) {
		return s.TTLCache.GetOrSetWithTTL(ctx, key, producer, ttlSeconds)
	})
}

func (s *SingleFlight[V]) do(key string, fn func() (V, error)) (V, error) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
