package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
)

const dashboardKeyPrefix = "analytics:dashboard:"

// RedisDashboardCache stores computed dashboards as JSON.
type RedisDashboardCache struct {
	client *redis.Client
}

func NewRedisDashboardCache(client *redis.Client) *RedisDashboardCache {
	return &RedisDashboardCache{client: client}
}

// Get returns nil without error on a miss.
func (c *RedisDashboardCache) Get(ctx context.Context, key string) (*analytics.Dashboard, error) {
	data, err := c.client.Get(ctx, dashboardKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dashboard: %w", err)
	}

	var d analytics.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard: %w", err)
	}
	return &d, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, key string, d *analytics.Dashboard, ttl time.Duration) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard: %w", err)
	}
	if err := c.client.Set(ctx, dashboardKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write dashboard: %w", err)
	}
	return nil
}

// InvalidateTenant removes every dashboard whose key starts with the tenant segment.
func (c *RedisDashboardCache) InvalidateTenant(ctx context.Context, tenantID uint) error {
	pattern := fmt.Sprintf("%s%d:*", dashboardKeyPrefix, tenantID)

	var batch []string
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= 100 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to delete dashboards: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan dashboards: %w", err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to delete dashboards: %w", err)
		}
	}
	return nil
}
