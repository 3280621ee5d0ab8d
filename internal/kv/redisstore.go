package kv

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists key-value pairs in Redis. Keys are namespaced
// with a prefix so the store can share a database with the rate
// limiter.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client. The client must be
// non-nil and already pinged by the caller.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "bookstore"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(k string) string { return r.prefix + ":" + k }

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	// No expiry: the collections are durable state, not a cache.
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisStore) Close() error { return r.client.Close() }
