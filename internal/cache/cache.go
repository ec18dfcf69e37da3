package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/go-redis/redis/v8"
)

const BalanceTTL = 30 * time.Second

// Cache - thin redis wrapper for derived values. A nil inner client disables
// it, every operation becomes a no-op miss.
type Cache struct {
	client *redis.Client
}

// New connects to redis; an empty address or a failed ping disables caching
// instead of failing the service.
func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis connection failed, continuing without cache:", err.Error())
		return &Cache{}
	}
	return &Cache{client: rdb}
}

func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON - unmarshals the cached value into dest, reports a hit
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		logger.Warn("Failed to cache value:", err.Error())
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("Failed to drop cached value:", err.Error())
	}
}

func (c *Cache) Close() error {
	if c.Enabled() {
		return c.client.Close()
	}
	return nil
}
