package redis

import (
	"context"
	"encoding/json"
	"time"
)

// Cache provides JSON-serialized caching on top of the client, namespaced by
// cache name. TTLs come from the client configuration (CacheTTLs by name,
// DefaultCacheTTL otherwise).
type Cache struct {
	client *Client
	name   string
}

// NewCache creates a named cache instance.
func NewCache(client *Client, name string) *Cache {
	return &Cache{client: client, name: name}
}

func (c *Cache) key(key string) string {
	return c.name + "::" + key
}

func (c *Cache) ttl() time.Duration {
	if ttl, ok := c.client.config.CacheTTLs[c.name]; ok {
		return ttl
	}
	if c.client.config.DefaultCacheTTL > 0 {
		return c.client.config.DefaultCacheTTL
	}
	return time.Hour
}

// Get deserializes the cached value into dest. The boolean reports whether
// the key was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.GetBytes(ctx, c.key(key))
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializes value and stores it under the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl())
}

// Evict removes the key from the cache.
func (c *Cache) Evict(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.key(key))
}
