package adapter

import (
	"context"
	"errors"
	"time"

	"ai-tutor/internal/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	storageService    = "ratelimit"
	storageObjectType = "client"
	storageOpTimeout  = 2 * time.Second
	resetScanCount    = 100
)

// RedisStorage implements fiber.Storage on Redis so rate-limit counters are shared
// between API instances.
type RedisStorage struct {
	client redis.UniversalClient
}

var _ fiber.Storage = (*RedisStorage)(nil)

// NewRedisStorage expects a connected client. Close does not close it.
func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	return &RedisStorage{client: client}
}

func storageKey(key string) string {
	return cache.GenerateCacheKey(storageService, storageObjectType, key)
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storageOpTimeout)
}

// Get returns nil, nil when the key does not exist, as fiber.Storage requires.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := opContext()
	defer cancel()

	val, err := s.client.Get(ctx, storageKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// Set stores val. A zero exp keeps the key until it is deleted.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := opContext()
	defer cancel()
	return s.client.Set(ctx, storageKey(key), val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := opContext()
	defer cancel()
	return s.client.Del(ctx, storageKey(key)).Err()
}

// Reset removes only this storage's keys, never the whole Redis database.
func (s *RedisStorage) Reset() error {
	ctx, cancel := opContext()
	defer cancel()

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, cache.KeyPattern(storageService, storageObjectType), resetScanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *RedisStorage) Close() error {
	return nil
}

// Ping checks the health of the Redis server.
func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
