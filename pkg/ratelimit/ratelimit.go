// Package ratelimit implements a fixed-window request limiter keyed by client.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"breachcheck/pkg/kvstore"
)

const (
	// DefaultLimit is the number of requests allowed per window.
	DefaultLimit = 10
	// DefaultWindow is the length of a rate-limit window.
	DefaultWindow = time.Minute

	keyPrefix = "rl:"
)

// Limiter counts requests per client key in windows of fixed length. The
// window opens with the first request and is not extended by later ones.
// Rejected requests are still counted.
type Limiter struct {
	store  kvstore.Store
	limit  int64
	window time.Duration
}

// New creates a Limiter. Non-positive limit or window fall back to the defaults.
func New(store kvstore.Store, limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &Limiter{store: store, limit: int64(limit), window: window}
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Allow records a request for clientKey and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	count, err := l.store.Incr(ctx, keyPrefix+clientKey, l.window)
	if err != nil {
		return false, fmt.Errorf("could not count request: %w", err)
	}

	return count <= l.limit, nil
}
