// Package kvstore defines the key-value contract backing short-lived,
// request-scoped state such as rate-limit windows and cached search results.
// Implementations live in sub-packages: memory for single-instance
// deployments and redisstore when several instances must share state.
package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or has expired.
var ErrMiss = errors.New("kvstore: miss")

// Store is a TTL-aware key-value store. Implementations must be safe for
// concurrent use by multiple goroutines.
type Store interface {
	// Get returns the value stored under key or ErrMiss when the key does not
	// exist or its TTL elapsed.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for ttl. A non-positive ttl stores the value
	// without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr increments the counter stored under key and returns the new value.
	// When the key is absent or expired a new window of length window is
	// opened with a count of 1. Increments inside an open window never extend it.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
