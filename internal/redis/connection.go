package redis

import (
	"context"
	"fmt"
	"time"

	"crypto-fraud-detector/internal/config"

	redisv9 "github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Hour

type Client struct {
	rdb      *redisv9.Client
	cacheTTL time.Duration
}

// NewClient создает новое подключение к Redis
func NewClient(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	rdb := redisv9.NewClient(&redisv9.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewFromRedis(rdb, cfg.CacheTTL), nil
}

// NewFromRedis оборачивает готовый клиент go-redis
func NewFromRedis(rdb *redisv9.Client, cacheTTL time.Duration) *Client {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Client{rdb: rdb, cacheTTL: cacheTTL}
}

// Ping проверяет соединение с Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
