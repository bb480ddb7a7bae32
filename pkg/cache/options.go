package cache

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Option configures a TTLCache under construction. Options report invalid
// values as errors so that a degenerate cache (one that evicts everything)
// cannot be built by accident.
type Option[V any] func(*TTLCache[V]) error

// WithDefaultTTL sets the default TTL (in seconds) used by Set.
// ttlSeconds <= 0 means entries written by Set never expire by time.
func WithDefaultTTL[V any](ttlSeconds int) Option[V] {
	return func(c *TTLCache[V]) error {
		c.defaultTTL = time.Duration(ttlSeconds) * time.Second
		return nil
	}
}

// WithMaxSize sets the size bound enforced by the sweep. Must be > 0.
func WithMaxSize[V any](n int) Option[V] {
	return func(c *TTLCache[V]) error {
		if n <= 0 {
			return errMaxSize(n)
		}
		c.maxSize = n
		return nil
	}
}

// WithCleanupInterval configures the periodic sweep. Zero disables the
// daemon; lazy expiry, per-key timers and write-triggered sweeps still run.
func WithCleanupInterval[V any](interval time.Duration) Option[V] {
	return func(c *TTLCache[V]) error {
		if interval < 0 {
			return fmt.Errorf("cache: cleanup interval must be >= 0, got %s", interval)
		}
		c.sweepEvery = interval
		return nil
	}
}

// WithLogger attaches a logger for cleanup summaries and lifecycle events.
// Absent (or nil) means logging is suppressed, never a fault.
func WithLogger[V any](log *zap.Logger) Option[V] {
	return func(c *TTLCache[V]) error {
		c.log = log
		return nil
	}
}

func errMaxSize(n int) error {
	return fmt.Errorf("cache: max size must be > 0, got %d", n)
}
