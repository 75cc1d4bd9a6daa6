//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_cache_interfaces.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

// ErrCacheMiss はキャッシュにデータが存在しない場合のエラーです
var ErrCacheMiss = errors.New("cache miss")

// ResolutionCache は解決済みの TransferDescriptor を短期間保持する
type ResolutionCache interface {
	Get(ctx context.Context, key string) (domain.TransferDescriptor, error)
	Set(ctx context.Context, key string, descriptor domain.TransferDescriptor, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
