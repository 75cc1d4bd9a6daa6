package infrastructure

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

// CachingLinkResolver は成功した解決結果だけを TTL 付きでキャッシュする
type CachingLinkResolver struct {
	resolver usecase.LinkResolver
	cache    usecase.ResolutionCache
	ttl      time.Duration
}

func NewCachingLinkResolver(resolver usecase.LinkResolver, cache usecase.ResolutionCache, ttl time.Duration) *CachingLinkResolver {
	return &CachingLinkResolver{
		resolver: resolver,
		cache:    cache,
		ttl:      ttl,
	}
}

// ResolutionCacheKey は共有URLのSHA-256を16進文字列で返す
func ResolutionCacheKey(shareURL string) string {
	sum := sha256.Sum256([]byte(shareURL))
	return hex.EncodeToString(sum[:])
}

func (r *CachingLinkResolver) Resolve(ctx context.Context, shareURL string) (domain.TransferDescriptor, error) {
	key := ResolutionCacheKey(shareURL)

	cached, err := r.cache.Get(ctx, key)
	if err == nil && cached.HasDirectURL() {
		slog.Debug("resolution cache hit", "key", key)
		return cached, nil
	}
	if err != nil && !errors.Is(err, usecase.ErrCacheMiss) {
		slog.Warn("failed to read resolution cache", "error", err)
	}

	desc, err := r.resolver.Resolve(ctx, shareURL)
	if err != nil {
		return domain.TransferDescriptor{}, err
	}

	if err := r.cache.Set(ctx, key, desc, r.ttl); err != nil {
		slog.Warn("failed to write resolution cache", "error", err)
	}
	return desc, nil
}

// Invalidate は共有URLに対応するキャッシュを削除する。
// 直接URLの期限切れなどで取得に失敗した場合に呼ばれる
func (r *CachingLinkResolver) Invalidate(ctx context.Context, shareURL string) error {
	key := ResolutionCacheKey(shareURL)
	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete resolution cache: %w", err)
	}
	slog.Debug("resolution cache invalidated", "key", key)
	return nil
}
