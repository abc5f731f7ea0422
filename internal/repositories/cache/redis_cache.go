package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_cashflow_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisResultCache stores results as JSON documents in Redis.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache connects to Redis at addr. Entries expire after ttl; zero keeps them.
func NewRedisResultCache(addr string, ttl time.Duration) *RedisResultCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisResultCache{client: rdb, ttl: ttl}
}

var _ portsrepo.ResultCache = (*RedisResultCache)(nil)

// Ping checks the connection.
func (r *RedisResultCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *RedisResultCache) Close() error {
	return r.client.Close()
}

func (r *RedisResultCache) GetResult(ctx context.Context, key string) (*domain.SimulationResult, bool, error) {
	val, err := r.client.Get(ctx, namespaced(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached result %s: %w", key, err)
	}

	var result domain.SimulationResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result %s: %w", key, err)
	}
	return &result, true, nil
}

func (r *RedisResultCache) SetResult(ctx context.Context, key string, result domain.SimulationResult) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result %s: %w", key, err)
	}
	if err := r.client.Set(ctx, namespaced(key), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache result %s: %w", key, err)
	}
	return nil
}
