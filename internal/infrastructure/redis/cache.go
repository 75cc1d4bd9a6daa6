package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss はキャッシュにキーが存在しない場合のセンチネルエラーです
var ErrCacheMiss = redis.Nil

// SetJSON は指定されたキーにJSON形式で値を設定します
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("JSONシリアライズに失敗しました: %w", err)
	}

	if err := c.client.Set(ctx, key, jsonBytes, ttl).Err(); err != nil {
		return fmt.Errorf("キーの設定に失敗しました: %w", err)
	}
	return nil
}

// GetJSON は指定されたキーの値をJSON形式で取得します
func (c *Client) GetJSON(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("キーの取得に失敗しました: %w", err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return fmt.Errorf("JSONデシリアライズに失敗しました: %w", err)
	}
	return nil
}

// Delete は指定されたキーを削除します
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("キーの削除に失敗しました: %w", err)
	}
	return nil
}
