// Package ratelimit provides the injected counter abstraction behind the
// per-IP request limits. The redis implementation is shared across
// instances; the in-memory one serves single-instance and dev setups.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter interface {
	// Allow reports whether the caller identified by key may proceed under
	// a limit of `limit` requests per `window`.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// MemoryLimiter keeps one token bucket per key. Buckets are never evicted;
// the key space (route × client IP) is small enough for a single salon site.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{buckets: make(map[string]*rate.Limiter)}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	m.mu.Lock()
	lim, ok := m.buckets[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)
		m.buckets[key] = lim
	}
	m.mu.Unlock()

	return lim.Allow(), nil
}
