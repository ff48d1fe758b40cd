package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kislikjeka/xrplview/internal/module/transactions"
	"github.com/kislikjeka/xrplview/pkg/logger"
)

const (
	// DefaultTTL is the default TTL for cached explorer responses
	DefaultTTL = 60 * time.Second

	// StaleTTL is the TTL of the fallback copy served when the explorer is unavailable
	StaleTTL = 24 * time.Hour

	// KeyPrefix is the prefix for explorer response keys
	KeyPrefix = "explorer:"
)

// Cache is a Redis-backed cache of raw explorer API responses
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

var _ transactions.ResponseCache = (*Cache)(nil)

// NewCache creates a new response cache
func NewCache(client *redis.Client, log *logger.Logger) *Cache {
	return NewCacheWithTTL(client, DefaultTTL, log)
}

// NewCacheWithTTL creates a new response cache with custom TTL
func NewCacheWithTTL(client *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: log.WithComponent("cache"),
	}
}

// CachedResponse is a stored explorer response with metadata
type CachedResponse struct {
	Key       string          `json:"key"`
	Body      json.RawMessage `json:"body"`
	FetchedAt time.Time       `json:"fetched_at"`
}

func freshKey(key string) string { return KeyPrefix + key }
func staleKey(key string) string { return KeyPrefix + key + ":stale" }

// Get retrieves a fresh cached response
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.get(ctx, freshKey(key), "get")
}

// GetStale retrieves the fallback copy of a response (used when the explorer fails)
func (c *Cache) GetStale(ctx context.Context, key string) ([]byte, bool, error) {
	return c.get(ctx, staleKey(key), "get_stale")
}

func (c *Cache) get(ctx context.Context, redisKey, operation string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("cache miss", "operation", operation, "key", redisKey)
		return nil, false, nil
	}
	if err != nil {
		c.logger.Error("cache error", "operation", operation, "key", redisKey, "error", err)
		return nil, false, fmt.Errorf("failed to get cached response: %w", err)
	}

	var cached CachedResponse
	if err := json.Unmarshal(val, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached response: %w", err)
	}

	c.logger.Debug("cache hit", "operation", operation, "key", redisKey)
	return cached.Body, true, nil
}

// Set stores a response with the default TTL and refreshes its stale copy
func (c *Cache) Set(ctx context.Context, key string, body []byte) error {
	return c.SetWithTTL(ctx, key, body, c.ttl)
}

// SetWithTTL stores a response with a custom TTL and refreshes its stale copy
func (c *Cache) SetWithTTL(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if !json.Valid(body) {
		return fmt.Errorf("refusing to cache invalid JSON for %s", key)
	}

	data, err := json.Marshal(CachedResponse{
		Key:       key,
		Body:      body,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, freshKey(key), data, ttl)
	pipe.Set(ctx, staleKey(key), data, StaleTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("cache error", "operation", "set", "key", key, "error", err)
		return fmt.Errorf("failed to set cached response: %w", err)
	}

	return nil
}

// Delete removes a cached response and its stale copy
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, freshKey(key), staleKey(key)).Err()
}

// Ping checks that Redis is reachable
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
