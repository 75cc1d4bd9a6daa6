// Package lrucache はRedisを使わない構成向けに、解決結果をプロセス内のLRUに保持する。
package lrucache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
	"github.com/newmo-oss/ctxtime"
)

const DefaultSize = 256

type entry struct {
	descriptor domain.TransferDescriptor
	expiresAt  time.Time
}

// ResolutionCache は usecase.ResolutionCache のインメモリ実装。
// maxTTL を超える TTL は maxTTL に切り詰められる
type ResolutionCache struct {
	cache *expirable.LRU[string, entry]
}

func NewResolutionCache(size int, maxTTL time.Duration) *ResolutionCache {
	if size <= 0 {
		size = DefaultSize
	}
	return &ResolutionCache{cache: expirable.NewLRU[string, entry](size, nil, maxTTL)}
}

func (c *ResolutionCache) Get(ctx context.Context, key string) (domain.TransferDescriptor, error) {
	e, ok := c.cache.Get(key)
	if !ok {
		return domain.TransferDescriptor{}, usecase.ErrCacheMiss
	}
	if !ctxtime.Now(ctx).Before(e.expiresAt) {
		c.cache.Remove(key)
		return domain.TransferDescriptor{}, usecase.ErrCacheMiss
	}
	return e.descriptor, nil
}

func (c *ResolutionCache) Set(ctx context.Context, key string, descriptor domain.TransferDescriptor, ttl time.Duration) error {
	c.cache.Add(key, entry{descriptor: descriptor, expiresAt: ctxtime.Now(ctx).Add(ttl)})
	return nil
}

func (c *ResolutionCache) Delete(_ context.Context, key string) error {
	c.cache.Remove(key)
	return nil
}
