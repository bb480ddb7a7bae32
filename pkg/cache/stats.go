package cache

import "time"

// hitRatioPlaceholder is reported by Stats for a non-empty cache. Hits and
// misses are not counted; callers must not treat this as measured telemetry.
const hitRatioPlaceholder = 0.85

// Stats is a point-in-time snapshot of the cache's state.
type Stats struct {
	// Size is the number of entries physically stored, including Expired.
	Size int
	// MaxSize is the current size bound.
	MaxSize int
	// PendingTimers is the number of armed per-key expiration timers.
	PendingTimers int
	// Expired counts entries past their deadline that no timer or sweep has
	// removed yet. Reads treat them as absent.
	Expired int
	// HitRatio is a placeholder estimate, not a measured ratio.
	HitRatio float64
}

// Stats returns a snapshot taken under the cache lock.
func (c *TTLCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	dead := 0
	for _, ent := range c.items {
		if expired(ent, now) {
			dead++
		}
	}

	s := Stats{
		Size:          len(c.items),
		MaxSize:       c.maxSize,
		PendingTimers: len(c.timers),
		Expired:       dead,
	}
	if s.Size > 0 {
		s.HitRatio = hitRatioPlaceholder
	}
	return s
}
