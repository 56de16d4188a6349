package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// PreviewCache memoizes plan previews for a TTL. Concurrent callers asking
// for the same key while a preview is being computed share its result.
type PreviewCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]previewEntry
	sf      singleflight.Group
}

type previewEntry struct {
	plan  *Plan
	built time.Time
}

// NewPreviewCache creates a PreviewCache. A zero ttl disables memoization
// but still collapses concurrent builds.
func NewPreviewCache(ttl time.Duration) *PreviewCache {
	return &PreviewCache{ttl: ttl, entries: make(map[string]previewEntry)}
}

// Get returns the cached plan for key or builds it.
func (c *PreviewCache) Get(ctx context.Context, key string, build func(ctx context.Context) (*Plan, error)) (*Plan, error) {
	if plan, ok := c.fresh(key); ok {
		return plan, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if plan, ok := c.fresh(key); ok {
			return plan, nil
		}
		plan, err := build(ctx)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = previewEntry{plan: plan, built: time.Now()}
			c.mu.Unlock()
		}
		return plan, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Plan), nil
}

// Invalidate drops every cached plan.
func (c *PreviewCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]previewEntry)
	c.mu.Unlock()
}

func (c *PreviewCache) fresh(key string) (*Plan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.ttl <= 0 || time.Since(e.built) > c.ttl {
		return nil, false
	}
	return e.plan, true
}
