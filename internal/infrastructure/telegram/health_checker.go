package telegram

import (
	"context"
	"fmt"
)

// HealthChecker は getMe が成功するかでBot APIへの到達性を確認する
type HealthChecker struct {
	bot BotAPI
}

func NewHealthChecker(bot BotAPI) *HealthChecker {
	return &HealthChecker{bot: bot}
}

func (c *HealthChecker) Name() string {
	return "telegram"
}

func (c *HealthChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.bot.GetMe(); err != nil {
		return fmt.Errorf("telegram health check failed: %w", err)
	}
	return nil
}
