package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"crypto-fraud-detector/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

func recordKey(id string) string {
	return fmt.Sprintf("transaction:%s:record", id)
}

// CacheRecord кэширует результат анализа с TTL из конфигурации
func (c *Client) CacheRecord(ctx context.Context, record *models.TransactionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return c.rdb.Set(ctx, recordKey(record.ID), data, c.cacheTTL).Err()
}

// GetCachedRecord получает результат анализа из кэша, nil если записи нет
func (c *Client) GetCachedRecord(ctx context.Context, id string) (*models.TransactionRecord, error) {
	data, err := c.rdb.Get(ctx, recordKey(id)).Bytes()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached record: %w", err)
	}

	var record models.TransactionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}
