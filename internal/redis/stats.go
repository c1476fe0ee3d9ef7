package redis

import (
	"context"
	"fmt"
	"strings"

	redisv9 "github.com/redis/go-redis/v9"
)

const riskStatsPrefix = "risk_stats:"

// IncrementRiskStats увеличивает счетчик транзакций со статусом status
func (c *Client) IncrementRiskStats(ctx context.Context, status string) error {
	return c.rdb.Incr(ctx, riskStatsPrefix+status).Err()
}

// GetRiskStats возвращает счетчики по всем статусам
func (c *Client) GetRiskStats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)

	iter := c.rdb.Scan(ctx, 0, riskStatsPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count, err := c.rdb.Get(ctx, key).Int64()
		if err == redisv9.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		stats[strings.TrimPrefix(key, riskStatsPrefix)] = count
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan risk stats: %w", err)
	}

	return stats, nil
}
