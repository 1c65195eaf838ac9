package gate

import (
	"context"
	"sync"
	"time"
)

// CachedResolver wraps a ProfileResolver with TTL-based caching so repeated
// authorization checks for the same subject do not re-resolve the profile.
type CachedResolver[U comparable] struct {
	inner ProfileResolver[U]
	cache map[U]*cacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

type cacheEntry struct {
	profile   Profile
	expiresAt time.Time
}

// NewCachedResolver wraps inner with a cache; ttl is how long a resolved
// profile stays valid before it is fetched again.
func NewCachedResolver[U comparable](inner ProfileResolver[U], ttl time.Duration) *CachedResolver[U] {
	return &CachedResolver[U]{
		inner: inner,
		cache: make(map[U]*cacheEntry),
		ttl:   ttl,
	}
}

// Resolve returns the subject's profile, from cache when fresh.
func (r *CachedResolver[U]) Resolve(ctx context.Context, subject U) (Profile, error) {
	r.mu.RLock()
	entry, ok := r.cache[subject]
	r.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.profile, nil
	}

	profile, err := r.inner.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[subject] = &cacheEntry{
		profile:   profile,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()

	return profile, nil
}

// Invalidate removes one subject from the cache. Call it when the subject's
// role assignment changes.
func (r *CachedResolver[U]) Invalidate(subject U) {
	r.mu.Lock()
	delete(r.cache, subject)
	r.mu.Unlock()
}

// InvalidateAll clears the whole cache.
func (r *CachedResolver[U]) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[U]*cacheEntry)
	r.mu.Unlock()
}
