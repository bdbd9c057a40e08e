// Package memory provides an in-process kvstore.Store. State is lost when the
// process exits and is not shared between instances.
package memory

import (
	"context"
	"sync"
	"time"

	"breachcheck/pkg/kvstore"

	"github.com/jonboulle/clockwork"
)

// entry is a single slot of the store. Counters and values share the same
// slot type so a key can only be used for one of them at a time.
type entry struct {
	value     []byte
	count     int64
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store is a mutex-guarded map implementing kvstore.Store. Expired entries are
// evicted lazily on access; StartJanitor adds a periodic sweep.
type Store struct {
	clock clockwork.Clock

	mu      sync.Mutex
	entries map[string]entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to evaluate expirations.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// Ensure Store conforms to the kvstore.Store interface at compile time.
var _ kvstore.Store = (*Store)(nil)

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		clock:   clockwork.NewRealClock(),
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, kvstore.ErrMiss
	}
	if e.expired(s.clock.Now()) {
		delete(s.entries, key)

		return nil, kvstore.ErrMiss
	}
	if e.value == nil {
		// the slot holds a counter, not a value
		return nil, kvstore.ErrMiss
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)

	return out, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = s.clock.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()

	return nil
}

// Incr increments the counter stored under key, opening a new window when the
// previous one elapsed.
func (s *Store) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || e.expired(now) || e.value != nil {
		e = entry{}
		if window > 0 {
			e.expiresAt = now.Add(window)
		}
	}
	e.count++
	s.entries[key] = e

	return e.count, nil
}

// Len returns the number of slots currently held, including expired ones not
// yet evicted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Sweep removes every expired entry and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, k)
			removed++
		}
	}

	return removed
}

// StartJanitor sweeps expired entries every interval until ctx is done.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := s.clock.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				s.Sweep()
			}
		}
	}()
}
