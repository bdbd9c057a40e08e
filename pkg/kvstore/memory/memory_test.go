package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"breachcheck/pkg/kvstore"
	"breachcheck/pkg/kvstore/memory"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := memory.New(memory.WithClock(clock))
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, kvstore.ErrMiss)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	// returned slices are copies
	got[0] = 'x'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), again)
}

func TestStore_GetAtExpiryIsMiss(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := memory.New(memory.WithClock(clock))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 10*time.Minute))

	clock.Advance(10*time.Minute - time.Second)
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, kvstore.ErrMiss)
	require.Equal(t, 0, s.Len(), "expired entry should be evicted on read")
}

func TestStore_SetWithoutTTLNeverExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := memory.New(memory.WithClock(clock))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))
	clock.Advance(365 * 24 * time.Hour)

	_, err := s.Get(ctx, "k")
	require.NoError(t, err)
}

func TestStore_IncrWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := memory.New(memory.WithClock(clock))
	ctx := context.Background()

	for i := int64(1); i <= 12; i++ {
		n, err := s.Incr(ctx, "rl", time.Minute)
		require.NoError(t, err)
		require.Equal(t, i, n)
		clock.Advance(time.Second)
	}

	// increments do not extend the window: it opened 12s ago
	clock.Advance(48 * time.Second)
	n, err := s.Incr(ctx, "rl", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestStore_CounterIsNotAValue(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	_, err := s.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, kvstore.ErrMiss)
}

func TestStore_Sweep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := memory.New(memory.WithClock(clock))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", []byte("a"), time.Second))
	require.NoError(t, s.Set(ctx, "long", []byte("b"), time.Hour))
	_, err := s.Incr(ctx, "counter", time.Second)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	require.Equal(t, 2, s.Sweep())
	require.Equal(t, 1, s.Len())
}

func TestStore_ConcurrentIncr(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Incr(ctx, "k", time.Minute)
		}()
	}
	wg.Wait()

	n, err := s.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 51, n)
}
