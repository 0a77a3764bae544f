// Package cache provides a best-effort key-value cache capability.
//
// Consumers treat the cache as advisory: a miss (including any backend
// failure) means "read from storage". Writes and deletes never surface
// errors to the caller; failures are logged and the caller proceeds.
package cache

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Store is the injected cache capability: get/set/delete by key with expiry.
type Store interface {
	// Get returns the cached value and true on a hit. Backend errors
	// degrade to a miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with the given TTL. Best effort.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Delete removes key. Best effort.
	Delete(ctx context.Context, key string)
}

type redisStore struct {
	rdb *goredis.Client
}

// NewRedisStore wraps a Redis client as a Store.
func NewRedisStore(rdb *goredis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			slog.Debug("cache get failed, falling back to storage", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Debug("cache set failed", "key", key, "error", err)
	}
}

func (s *redisStore) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		slog.Debug("cache delete failed", "key", key, "error", err)
	}
}
