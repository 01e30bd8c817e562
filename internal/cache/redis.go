package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lordcript/gestion-achatss.io/config"
)

// Client wraps a redis connection. A nil *Client is valid and disables caching,
// so callers never have to guard on configuration.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis. Returns nil (cache disabled) when no address is configured.
func New(ctx context.Context, cfg *config.RedisConfig) (*Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb}, nil
}

func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key, value, ttl)
}

// DelPattern removes every key matching pattern, used for write-path invalidation.
func (c *Client) DelPattern(ctx context.Context, pattern string) {
	if c == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		c.rdb.Del(ctx, keys...)
	}
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
