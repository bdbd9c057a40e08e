package redisstore_test

import (
	"context"
	"testing"
	"time"

	"breachcheck/pkg/kvstore"
	"breachcheck/pkg/kvstore/redisstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *redisstore.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, redisstore.New(client, "test:")
}

func TestStore_GetSet(t *testing.T) {
	mr, s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, kvstore.ErrMiss)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`), 10*time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), got)

	// keys are namespaced
	require.True(t, mr.Exists("test:k"))

	mr.FastForward(10 * time.Minute)
	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, kvstore.ErrMiss)
}

func TestStore_IncrWindow(t *testing.T) {
	mr, s := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 11; i++ {
		n, err := s.Incr(ctx, "rl:user", time.Minute)
		require.NoError(t, err)
		require.Equal(t, i, n)
	}
	require.Equal(t, time.Minute, mr.TTL("test:rl:user"))

	mr.FastForward(time.Minute)

	n, err := s.Incr(ctx, "rl:user", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestStore_IncrSetsExpiryOnFirstIncrement(t *testing.T) {
	mr, s := newTestStore(t)
	ctx := context.Background()

	n, err := s.Incr(ctx, "rl:user", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.Equal(t, time.Minute, mr.TTL("test:rl:user"))

	// later increments keep the window end
	mr.FastForward(30 * time.Second)
	n, err = s.Incr(ctx, "rl:user", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.Equal(t, 30*time.Second, mr.TTL("test:rl:user"))
}

func TestStore_IncrRepairsCounterWithoutExpiry(t *testing.T) {
	mr, s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("test:rl:user", "7"))
	require.Zero(t, mr.TTL("test:rl:user"))

	n, err := s.Incr(ctx, "rl:user", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 8, n)
	require.Equal(t, time.Minute, mr.TTL("test:rl:user"))

	mr.FastForward(time.Minute)
	n, err = s.Incr(ctx, "rl:user", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redisstore.Connect(context.Background(), redisstore.Options{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	client, err = redisstore.Connect(context.Background(), redisstore.Options{Addr: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redisstore.Connect(context.Background(), redisstore.Options{Addr: addr})
	require.Error(t, err)
}
