package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// RedisStore keeps cached values in Redis. Failures are logged and reported as misses.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStoreFromClient(client, logger), nil
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rs.warn("get", key, err)
		}
		return nil, false
	}
	return value, true
}

func (rs *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	if err := rs.client.Set(ctx, key, value, ttl).Err(); err != nil {
		rs.warn("set", key, err)
	}
}

func (rs *RedisStore) Delete(ctx context.Context, key string) {
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		rs.warn("delete", key, err)
	}
}

// Close closes the underlying client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

func (rs *RedisStore) warn(op, key string, err error) {
	if rs.logger != nil {
		rs.logger.Warn("⚠️ Redis cache operation failed",
			zap.String("op", op),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
