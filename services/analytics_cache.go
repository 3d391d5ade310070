package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smartbuddy/model"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache keeps the computed daily series hot for a short TTL so
// repeated dashboard loads do not re-aggregate four collections each time.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalAnalyticsCache *AnalyticsCache

func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{client: client, ttl: ttl}
}

func analyticsKey(userID string, days int) string {
	return fmt.Sprintf("analytics:%s:%d", userID, days)
}

// Get returns the cached series, or nil on a miss. A nil cache always
// misses; the server runs without Redis.
func (c *AnalyticsCache) Get(ctx context.Context, userID string, days int) ([]model.DailyAnalytics, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, analyticsKey(userID, days)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analytics cache: %v", err)
	}

	var series []model.DailyAnalytics
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("failed to decode cached analytics: %v", err)
	}
	return series, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, userID string, days int, series []model.DailyAnalytics) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %v", err)
	}
	if err := c.client.Set(ctx, analyticsKey(userID, days), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analytics: %v", err)
	}
	return nil
}

// Invalidate drops every cached window for the user after a write that
// feeds the series (new session, completed task, mood entry).
func (c *AnalyticsCache) Invalidate(ctx context.Context, userID string) error {
	if c == nil || c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, fmt.Sprintf("analytics:%s:*", userID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
