// Package redisstore provides a kvstore.Store backed by Redis so rate-limit
// windows and cached results can be shared between service instances.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"breachcheck/pkg/kvstore"

	"github.com/redis/go-redis/v9"
)

// Options holds the Redis connection settings.
type Options struct {
	// Addr is either host:port or a redis:// URL.
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key written by the store.
	Prefix string
}

// connectionTimeout bounds the initial PING.
const connectionTimeout = 5 * time.Second

// Connect creates a Redis client from opts and verifies the connection.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	var redisOpts *redis.Options
	if strings.HasPrefix(opts.Addr, "redis://") || strings.HasPrefix(opts.Addr, "rediss://") {
		parsed, err := redis.ParseURL(opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("could not parse redis url: %w", err)
		}
		redisOpts = parsed
	} else {
		redisOpts = &redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}
	}

	client := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// Store implements kvstore.Store on top of a Redis client.
type Store struct {
	client redis.Cmdable
	prefix string
}

// Ensure Store conforms to the kvstore.Store interface at compile time.
var _ kvstore.Store = (*Store)(nil)

// New wraps client. Keys are namespaced with prefix.
func New(client redis.Cmdable, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(k string) string { return s.prefix + k }

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kvstore.ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("could not get key from redis: %w", err)
	}

	return b, nil
}

// Set stores value under key for ttl.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		// go-redis treats negative values as KEEPTTL
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("could not set key in redis: %w", err)
	}

	return nil
}

// incrWindowScript increments a counter and sets its expiry in the same step
// whenever the key has none, so a counter can never outlive its window.
const incrWindowScript = `
	local n = redis.call("incr", KEYS[1])
	if redis.call("pttl", KEYS[1]) < 0 then
		redis.call("pexpire", KEYS[1], ARGV[1])
	end
	return n
`

var incrWindow = redis.NewScript(incrWindowScript) //nolint: gochecknoglobals

// Incr increments the window counter stored under key. The first increment of
// a window sets its expiry; later increments leave it untouched.
func (s *Store) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := s.key(key)

	if window <= 0 {
		n, err := s.client.Incr(ctx, k).Result()
		if err != nil {
			return 0, fmt.Errorf("could not increment key in redis: %w", err)
		}

		return n, nil
	}

	n, err := incrWindow.Run(ctx, s.client, []string{k}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("could not increment window counter in redis: %w", err)
	}

	return n, nil
}
