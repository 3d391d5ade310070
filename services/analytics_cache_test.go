package services

import (
	"context"
	"testing"
	"time"
)

// Without Redis the cache must behave as a permanent miss, never a crash.
func TestAnalyticsCacheNilIsAlwaysAMiss(t *testing.T) {
	var c *AnalyticsCache

	series, err := c.Get(context.Background(), "user-1", 7)
	if err != nil || series != nil {
		t.Errorf("nil cache Get: expected miss, got %v, %v", series, err)
	}
	if err := c.Set(context.Background(), "user-1", 7, nil); err != nil {
		t.Errorf("nil cache Set: %v", err)
	}
	if err := c.Invalidate(context.Background(), "user-1"); err != nil {
		t.Errorf("nil cache Invalidate: %v", err)
	}
}

func TestAnalyticsCacheWithoutClientIsAlwaysAMiss(t *testing.T) {
	c := NewAnalyticsCache(nil, time.Minute)

	series, err := c.Get(context.Background(), "user-1", 7)
	if err != nil || series != nil {
		t.Errorf("clientless cache Get: expected miss, got %v, %v", series, err)
	}
	if err := c.Invalidate(context.Background(), "user-1"); err != nil {
		t.Errorf("clientless cache Invalidate: %v", err)
	}
}
