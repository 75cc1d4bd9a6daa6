package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// ConnectionConfig はRedis接続の設定を保持します
type ConnectionConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Dialer はオプションから *redis.Client を生成する関数の型
type Dialer func(opt *redis.Options) *redis.Client

// Connect は接続を作成し、Pingで疎通を確認してから返します
func Connect(ctx context.Context, cfg ConnectionConfig, dial Dialer) (*redis.Client, error) {
	if dial == nil {
		dial = redis.NewClient
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}

	client := dial(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis接続に失敗しました: %w", err)
	}
	return client, nil
}

// Client はRedisクライアントのラッパーです
type Client struct {
	client *redis.Client
}

func NewClient(client *redis.Client) *Client {
	return &Client{client: client}
}

// Close はRedisクライアントをクローズします
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Ping はRedisサーバーとの接続確認を行います
func (c *Client) Ping(ctx context.Context) error {
	if c.client == nil {
		return errors.New("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}
