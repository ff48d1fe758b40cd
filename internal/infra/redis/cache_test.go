package redis_test

import (
	"context"
	"io"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/xrplview/internal/infra/redis"
	"github.com/kislikjeka/xrplview/pkg/logger"
)

// setupTestCache connects to a local Redis, DB 15, and skips when none is running
func setupTestCache(t *testing.T, ttl time.Duration) *redis.Cache {
	client := goredis.NewClient(&goredis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Skipping test: Redis not available")
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test database: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return redis.NewCacheWithTTL(client, ttl, logger.New("development", io.Discard))
}

func TestCache_SetAndGet(t *testing.T) {
	c := setupTestCache(t, time.Minute)
	ctx := context.Background()

	body := []byte(`{"transactions":[{"type":"payment"}]}`)
	require.NoError(t, c.Set(ctx, "mainnet:account:rAddr", body))

	got, found, err := c.Get(ctx, "mainnet:account:rAddr")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, string(body), string(got))

	stale, found, err := c.GetStale(ctx, "mainnet:account:rAddr")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, string(body), string(stale))
}

func TestCache_Miss(t *testing.T) {
	c := setupTestCache(t, time.Minute)

	got, found, err := c.Get(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCache_ExpiryKeepsStaleCopy(t *testing.T) {
	c := setupTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tx:ABC", []byte(`{"type":"payment"}`)))
	time.Sleep(1100 * time.Millisecond)

	_, found, err := c.Get(ctx, "tx:ABC")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = c.GetStale(ctx, "tx:ABC")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCache_RejectsInvalidJSON(t *testing.T) {
	c := setupTestCache(t, time.Minute)
	assert.Error(t, c.Set(context.Background(), "bad", []byte("not json")))
}

func TestCache_Delete(t *testing.T) {
	c := setupTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tx:DEL", []byte(`{}`)))
	require.NoError(t, c.Delete(ctx, "tx:DEL"))

	_, found, _ := c.Get(ctx, "tx:DEL")
	assert.False(t, found)
	_, found, _ = c.GetStale(ctx, "tx:DEL")
	assert.False(t, found)
}
