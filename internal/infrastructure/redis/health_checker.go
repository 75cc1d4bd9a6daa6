package redis

import (
	"context"
	"fmt"
)

// HealthChecker はRedisのヘルスチェックを行う
type HealthChecker struct {
	client *Client
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

func (c *HealthChecker) Name() string {
	return "redis"
}

// Check はPINGが通るかを確認する
func (c *HealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
