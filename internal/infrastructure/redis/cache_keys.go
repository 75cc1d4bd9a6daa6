// Package redis はリンク解決結果のキャッシュをRedisに保持する。
// キーのプレフィックスとTTLはこのファイルにまとめて定義する。
package redis

import "time"

const (
	// ResolutionKeyPrefix は解決結果のキャッシュキーのプレフィックス
	// Format: terabridge:resolve:{sha256(share_url)}
	ResolutionKeyPrefix = "terabridge:resolve:"
)

const (
	// DefaultResolutionTTL は解決結果のキャッシュの既定TTL (5分)
	DefaultResolutionTTL = 5 * time.Minute
)

func ResolutionKey(digest string) string {
	return ResolutionKeyPrefix + digest
}
