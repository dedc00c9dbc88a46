package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis tests need a running Redis/Valkey server; set REDIS_ADDRESS to enable them.

func newTestRedisCache(t *testing.T, ttl time.Duration) Cache {
	t.Helper()
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis tests: set REDIS_ADDRESS to enable")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis test DB: %v", err)
	}
	_ = client.Close()

	c, err := New("redis", ProviderConfig{Size: 100, TTL: ttl, RedisAddress: addr, RedisDB: 15})
	if err != nil {
		t.Fatalf("New redis cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 10*time.Second)

	if _, ok := c.Get(ctx, "meta:abc"); ok {
		t.Fatal("Expected miss")
	}

	c.Set(ctx, "meta:abc", []byte("payload"))
	val, ok := c.Get(ctx, "meta:abc")
	if !ok || string(val) != "payload" {
		t.Fatalf("Expected payload hit, got %q, %v", val, ok)
	}
	if !c.Contains(ctx, "meta:abc") {
		t.Error("Expected key to be contained")
	}
	if c.Len() != 1 {
		t.Errorf("Expected Len 1, got %d", c.Len())
	}
}

func TestRedisCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 200*time.Millisecond)

	c.Set(ctx, "short", []byte("lived"))
	time.Sleep(500 * time.Millisecond)

	if _, ok := c.Get(ctx, "short"); ok {
		t.Error("Expected entry to expire")
	}
}

func TestRedisCache_CancelledContextIsMiss(t *testing.T) {
	c := newTestRedisCache(t, 10*time.Second)
	c.Set(context.Background(), "k", []byte("v"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("Expected a cancelled lookup to report a miss")
	}
}
