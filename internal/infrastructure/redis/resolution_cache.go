package redis

import (
	"context"
	"errors"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

// ResolutionCache は usecase.ResolutionCache のRedis実装
type ResolutionCache struct {
	client *Client
}

func NewResolutionCache(client *Client) *ResolutionCache {
	return &ResolutionCache{client: client}
}

func (c *ResolutionCache) Get(ctx context.Context, key string) (domain.TransferDescriptor, error) {
	var cached cachedDescriptor
	if err := c.client.GetJSON(ctx, ResolutionKey(key), &cached); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return domain.TransferDescriptor{}, usecase.ErrCacheMiss
		}
		return domain.TransferDescriptor{}, err
	}
	return domain.NewTransferDescriptor(cached.DirectURL, cached.Filename, cached.Size), nil
}

func (c *ResolutionCache) Set(ctx context.Context, key string, descriptor domain.TransferDescriptor, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultResolutionTTL
	}
	cached := cachedDescriptor{
		DirectURL: descriptor.DirectURL,
		Filename:  descriptor.Filename,
		Size:      descriptor.DeclaredSizeBytes,
	}
	return c.client.SetJSON(ctx, ResolutionKey(key), cached, ttl)
}

func (c *ResolutionCache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, ResolutionKey(key))
}

type cachedDescriptor struct {
	DirectURL string `json:"direct_url"`
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
}
