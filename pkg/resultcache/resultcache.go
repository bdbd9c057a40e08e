// Package resultcache stores completed verification results for a short time
// so identical searches do not reach the breach provider again.
package resultcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"breachcheck/pkg/domain"
	"breachcheck/pkg/kvstore"
)

// DefaultTTL is how long a completed verification stays cached.
const DefaultTTL = 10 * time.Minute

const keyPrefix = "cache:"

// Cache is a TTL cache of verification results keyed by provider query.
type Cache struct {
	store kvstore.Store
	ttl   time.Duration
}

// New creates a Cache. A non-positive ttl falls back to DefaultTTL.
func New(store kvstore.Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{store: store, ttl: ttl}
}

// Get returns the cached verification for key. The boolean is false on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Verification, bool, error) {
	raw, err := c.store.Get(ctx, keyPrefix+key)
	if errors.Is(err, kvstore.ErrMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read cache: %w", err)
	}

	var v domain.Verification
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("could not decode cached verification: %w", err)
	}

	return &v, true, nil
}

// Put caches v under key for the configured TTL.
func (c *Cache) Put(ctx context.Context, key string, v *domain.Verification) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode verification: %w", err)
	}
	if err := c.store.Set(ctx, keyPrefix+key, raw, c.ttl); err != nil {
		return fmt.Errorf("could not write cache: %w", err)
	}

	return nil
}
