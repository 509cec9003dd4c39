package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every Redis round trip issued by the store.
const opTimeout = 2 * time.Second

func init() {
	Register("redis", newRedisStore)
}

// redisStore keeps each entry in its own key, {prefix}{key}, with a
// PX expiry. Get uses GETEX to slide the expiry forward. Size limits are
// left to the server's maxmemory policy, so OnEvict is never called.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
	prefix string
}

func newRedisStore(cfg ProviderConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisStore{
		client: client,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisStore) key(k string) string {
	return r.prefix + k
}

func (r *redisStore) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisStore) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		val []byte
		err error
	)
	if r.ttl > 0 {
		val, err = r.client.GetEx(ctx, r.key(key), r.ttl).Bytes()
	} else {
		val, err = r.client.Get(ctx, r.key(key)).Bytes()
	}
	if err != nil {
		// redis.Nil is a plain miss.
		if !errors.Is(err, redis.Nil) {
			r.logError("redis store Get failed", err)
		}
		return nil, false
	}
	return val, true
}

func (r *redisStore) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		r.logError("redis store Set failed", err)
	}
}

func (r *redisStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logError("redis store Delete failed", err)
	}
}

// Len counts keys under the store prefix with SCAN, so it is O(keys) and
// only meant for metrics scrapes.
func (r *redisStore) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	n := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		r.logError("redis store Len failed", err)
		return 0
	}
	return n
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
