// Package cache provides the in-memory TTL cache used by the catalog gateway.
package cache

import (
	"sync/atomic"
	"time"

	"github.com/maypok86/otter/v2"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
	gen       uint64 // distinguishes writes that share an expiry
}

// TTL is an unbounded in-memory cache where every entry carries its own
// expiry. Expiry is checked on read; an expired entry is dropped by the read
// that finds it. Safe for concurrent use.
type TTL[V any] struct {
	entries *otter.Cache[string, entry[V]]
	now     func() time.Time
	gen     atomic.Uint64
}

// Option configures a TTL cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now (for tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New creates an empty cache.
func New[V any](opts ...Option) *TTL[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &TTL[V]{
		entries: otter.Must(&otter.Options[string, entry[V]]{}),
		now:     o.now,
	}
}

// Get returns the value for key if present and not expired.
func (c *TTL[V]) Get(key string) (V, bool) {
	var zero V
	e, ok := c.entries.GetIfPresent(key)
	if !ok {
		return zero, false
	}
	now := c.now()
	if now.Before(e.expiresAt) {
		return e.value, true
	}

	// Only the entry observed as expired is removed. A Set that landed
	// after the lookup keeps its value and expiry.
	var fresh entry[V]
	var kept bool
	c.entries.Compute(key, func(cur entry[V], found bool) (entry[V], otter.ComputeOp) {
		if !found {
			return cur, otter.CancelOp
		}
		if cur.gen == e.gen {
			return cur, otter.InvalidateOp
		}
		fresh, kept = cur, now.Before(cur.expiresAt)
		return cur, otter.CancelOp
	})
	if kept {
		return fresh.value, true
	}
	return zero, false
}

// Has reports whether key holds an unexpired value.
func (c *TTL[V]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Set stores value under key for ttl, replacing any previous value and its
// expiry.
func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.entries.Set(key, entry[V]{
		value:     value,
		expiresAt: c.now().Add(ttl),
		gen:       c.gen.Add(1),
	})
}

// Delete removes key.
func (c *TTL[V]) Delete(key string) {
	c.entries.Invalidate(key)
}

// Clear removes every entry.
func (c *TTL[V]) Clear() {
	c.entries.InvalidateAll()
}

// Len returns the number of stored entries, including expired entries that
// no read has dropped yet.
func (c *TTL[V]) Len() int {
	return c.entries.EstimatedSize()
}
