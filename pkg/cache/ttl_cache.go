package cache

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTTL             = 5 * time.Minute
	defaultMaxSize         = 1000
	defaultCleanupInterval = 10 * time.Minute

	// sweepChance is the probability that a Set triggers a full sweep,
	// amortizing cleanup cost over writes.
	sweepChance = 0.10
)

// entry is the record stored per live key. createdAt is the sole ordering
// key for size-based eviction; lastAccessedAt is maintained on reads but
// not consulted by the eviction policy.
type entry[V any] struct {
	value          V
	createdAt      time.Time
	lastAccessedAt time.Time
	expiresAt      time.Time // zero time means no expiry
}

var _ Cache[any] = (*TTLCache[any])(nil)

// TTLCache is a mutex-protected TTL cache with two independent expiry
// mechanisms: a cancelable one-shot timer per key and an idempotent
// full-table sweep (periodic, probabilistic after writes, and on demand).
// When the table exceeds maxSize, the sweep evicts the oldest entries by
// creation time.
type TTLCache[V any] struct {
	mu     sync.Mutex
	items  map[string]*entry[V]
	timers map[string]*time.Timer

	defaultTTL time.Duration // <= 0 means no expiry
	maxSize    int
	sweepEvery time.Duration // 0 disables the periodic sweep

	log *zap.Logger

	sweepStop chan struct{}
	destroyed bool
}

// New creates a TTL cache and starts its cleanup daemon (if enabled).
// Configuration is validated eagerly: a non-positive max size or a negative
// cleanup interval is a construction error. A negative default TTL is
// normalized to "no expiry".
func New[V any](opts ...Option[V]) (*TTLCache[V], error) {
	c := &TTLCache[V]{
		items:      make(map[string]*entry[V]),
		timers:     make(map[string]*time.Timer),
		defaultTTL: defaultTTL,
		maxSize:    defaultMaxSize,
		sweepEvery: defaultCleanupInterval,
	}

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	if c.defaultTTL < 0 {
		c.defaultTTL = 0
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}

	if c.sweepEvery > 0 {
		c.sweepStop = make(chan struct{})
		go c.sweepLoop()
	}

	c.log.Debug("cache created",
		zap.Duration("defaultTTL", c.defaultTTL),
		zap.Int("maxSize", c.maxSize),
		zap.Duration("cleanupInterval", c.sweepEvery))
	return c, nil
}

// Get returns the value for key and true if present and not expired.
// An expired entry is removed on the spot before reporting a miss.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ent, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if expired(ent, time.Now()) {
		c.removeLocked(key)
		return zero, false
	}
	ent.lastAccessedAt = time.Now()
	return ent.value, true
}

// Set stores value for key using the cache's default TTL.
func (c *TTLCache[V]) Set(key string, value V) {
	c.setWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value for key. ttlSeconds <= 0 means the entry never
// expires by time; it remains subject to size-based eviction.
func (c *TTLCache[V]) SetWithTTL(key string, value V, ttlSeconds int) {
	c.setWithTTL(key, value, time.Duration(ttlSeconds)*time.Second)
}

func (c *TTLCache[V]) setWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}

	// A stale timer must never delete the value written here.
	c.cancelTimerLocked(key)

	now := time.Now()
	ent := &entry[V]{
		value:          value,
		createdAt:      now,
		lastAccessedAt: now,
	}
	if ttl > 0 {
		ent.expiresAt = now.Add(ttl)
		c.timers[key] = time.AfterFunc(ttl, func() { c.expire(key) })
	}
	c.items[key] = ent

	if rand.Float64() < sweepChance {
		c.sweepLocked(now)
	}
}

// Delete removes key and its pending expiration, reporting prior presence.
// Deleting an absent key is a no-op.
func (c *TTLCache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	c.removeLocked(key)
	return ok
}

// Has reports whether key is present and not expired. It goes through the
// same lazy-expiry path as Get.
func (c *TTLCache[V]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the keys of all non-expired entries. It filters only; expired
// entries are left for their timers or the next sweep.
func (c *TTLCache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	out := make([]string, 0, len(c.items))
	for k, ent := range c.items {
		if !expired(ent, now) {
			out = append(out, k)
		}
	}
	return out
}

// Len returns the number of items physically stored, including expired
// entries not yet swept.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetAll returns a shallow copy of all non-expired contents.
func (c *TTLCache[V]) GetAll() map[string]V {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	out := make(map[string]V, len(c.items))
	for k, ent := range c.items {
		if !expired(ent, now) {
			out[k] = ent.value
		}
	}
	return out
}

// Clear cancels every pending expiration and empties the cache.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cleared := len(c.items)
	for key := range c.timers {
		c.cancelTimerLocked(key)
	}
	c.items = make(map[string]*entry[V])

	c.log.Info("cache cleared", zap.Int("entries", cleared))
}

// GetOrSet returns the cached value for key or produces, caches and returns
// a fresh one with the default TTL. See GetOrSetWithTTL.
func (c *TTLCache[V]) GetOrSet(ctx context.Context, key string, producer Producer[V]) (V, error) {
	return c.getOrSet(ctx, key, producer, c.defaultTTL)
}

// GetOrSetWithTTL returns the cached value for key if present. Otherwise it
// runs producer; on success the result is cached with the given ttl and
// returned, on failure the error is logged and returned unchanged and
// nothing is cached. Concurrent misses on the same key each run their own
// producer (no single-flight; the last write wins). Wrap the cache with
// NewSingleFlight to deduplicate.
func (c *TTLCache[V]) GetOrSetWithTTL(ctx context.Context, key string, producer Producer[V], ttlSeconds int) (V, error) {
	return c.getOrSet(ctx, key, producer, time.Duration(ttlSeconds)*time.Second)
}

func (c *TTLCache[V]) getOrSet(ctx context.Context, key string, producer Producer[V], ttl time.Duration) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := producer(ctx)
	if err != nil {
		var zero V
		c.log.Error("cache producer failed", zap.String("key", key), zap.Error(err))
		return zero, err
	}

	c.setWithTTL(key, v, ttl)
	return v, nil
}

// SetMaxSize updates the size bound and immediately sweeps to enforce it.
func (c *TTLCache[V]) SetMaxSize(n int) error {
	if n <= 0 {
		return errMaxSize(n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSize = n
	c.sweepLocked(time.Now())
	return nil
}

// SetDefaultTTL updates the TTL applied by Set. ttlSeconds <= 0 means no
// expiry for subsequent writes; existing entries keep their deadlines.
func (c *TTLCache[V]) SetDefaultTTL(ttlSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ttlSeconds < 0 {
		ttlSeconds = 0
	}
	c.defaultTTL = time.Duration(ttlSeconds) * time.Second
}

// Destroy stops the cleanup daemon, cancels all pending timers and empties
// the cache. Safe to call multiple times; all operations on a destroyed
// cache behave as on a permanently empty one.
func (c *TTLCache[V]) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	c.destroyed = true

	if c.sweepStop != nil {
		close(c.sweepStop)
	}
	for key := range c.timers {
		c.cancelTimerLocked(key)
	}
	c.items = make(map[string]*entry[V])

	c.log.Info("cache destroyed")
}

// expire is the per-key timer callback. It re-checks the deadline under the
// lock: the key may have been overwritten, deleted or swept since the timer
// was armed, and removal must stay idempotent.
func (c *TTLCache[V]) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.items[key]
	if !ok || !expired(ent, time.Now()) {
		return
	}
	c.removeLocked(key)
}

func (c *TTLCache[V]) sweepLoop() {
	ticker := time.NewTicker(c.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.sweepLocked(time.Now())
			c.mu.Unlock()
		case <-c.sweepStop:
			return
		}
	}
}

// sweepLocked removes all time-expired entries, then trims the table to
// maxSize by evicting the oldest surviving entries by creation time.
// Callers must hold c.mu.
func (c *TTLCache[V]) sweepLocked(now time.Time) {
	before := len(c.items)

	for key, ent := range c.items {
		if expired(ent, now) {
			c.removeLocked(key)
		}
	}

	if excess := len(c.items) - c.maxSize; excess > 0 {
		type aged struct {
			key       string
			createdAt time.Time
		}
		survivors := make([]aged, 0, len(c.items))
		for k, ent := range c.items {
			survivors = append(survivors, aged{k, ent.createdAt})
		}
		sort.SliceStable(survivors, func(i, j int) bool {
			return survivors[i].createdAt.Before(survivors[j].createdAt)
		})
		for _, s := range survivors[:excess] {
			c.removeLocked(s.key)
		}
	}

	if after := len(c.items); after < before {
		c.log.Debug("cache sweep",
			zap.Int("before", before),
			zap.Int("after", after),
			zap.Int("maxSize", c.maxSize))
	}
}

// removeLocked deletes the entry and its timer handle together, keeping the
// two tables consistent. Removing an absent key is a no-op.
func (c *TTLCache[V]) removeLocked(key string) {
	delete(c.items, key)
	c.cancelTimerLocked(key)
}

// cancelTimerLocked stops and drops the pending expiration for key. Stopping
// a timer that already fired is a no-op; its callback re-checks under the lock.
func (c *TTLCache[V]) cancelTimerLocked(key string) {
	if t, ok := c.timers[key]; ok {
		t.Stop()
		delete(c.timers, key)
	}
}

func expired[V any](ent *entry[V], now time.Time) bool {
	return !ent.expiresAt.IsZero() && now.After(ent.expiresAt)
}
