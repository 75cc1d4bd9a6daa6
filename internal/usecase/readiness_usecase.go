package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrHealthCheckFailed はヘルスチェックが失敗したことを示すエラー
var ErrHealthCheckFailed = errors.New("health check failed")

// DefaultCheckTimeout は個々のチェッカーに与える既定のタイムアウト
const DefaultCheckTimeout = 3 * time.Second

// HealthCheckResult は個々のヘルスチェック結果を表す
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// ReadinessUseCase はストア、Telegram、キャッシュ、アーカイブ先の疎通をまとめて確認する
type ReadinessUseCase struct {
	checkers     []HealthChecker
	checkTimeout time.Duration
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers:     checkers,
		checkTimeout: DefaultCheckTimeout,
	}
}

// WithCheckTimeout はチェッカーごとのタイムアウトを差し替える
func (uc *ReadinessUseCase) WithCheckTimeout(d time.Duration) *ReadinessUseCase {
	uc.checkTimeout = d
	return uc
}

// Execute はすべてのヘルスチェッカーを実行し、1つでも失敗した場合はエラーを返す
func (uc *ReadinessUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails はチェッカーを並行に実行し、登録順に結果を返す
func (uc *ReadinessUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, len(uc.checkers))

	var g errgroup.Group
	for i, checker := range uc.checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, uc.checkTimeout)
			defer cancel()
			err := checker.Check(checkCtx)
			results[i] = HealthCheckResult{
				Name:    checker.Name(),
				Healthy: err == nil,
				Error:   err,
			}
			return nil
		})
	}
	_ = g.Wait()

	var failedCheckers []string
	for _, r := range results {
		if r.Error != nil {
			failedCheckers = append(failedCheckers, fmt.Sprintf("%s: %v", r.Name, r.Error))
		}
	}
	if len(failedCheckers) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failedCheckers, "; "))
	}

	return results, nil
}
