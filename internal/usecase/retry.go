package usecase

import (
	"context"
	"time"
)

// Sleeper はコンテキストのキャンセルを考慮して d だけ待機する
type Sleeper func(ctx context.Context, d time.Duration) error

func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryPolicy はレート制限時に「指定時間+Margin 待って1回だけ再試行」するポリシー
type RetryPolicy struct {
	Margin time.Duration
	Sleep  Sleeper
	// OnWait は待機を始める前に呼ばれる。nil可
	OnWait func(wait time.Duration)
}

func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep == nil {
		return SleepContext(ctx, d)
	}
	return p.Sleep(ctx, d)
}

// RetryOnceAfterWait は op がレート制限エラーを返した場合に限り待機後1回だけ再実行する。
// 2回目の結果はそのまま返す
func RetryOnceAfterWait[T any](ctx context.Context, policy RetryPolicy, op func(ctx context.Context) (T, error)) (T, error) {
	v, err := op(ctx)
	wait, limited := RetryAfter(err)
	if !limited {
		return v, err
	}

	total := wait + policy.Margin
	if policy.OnWait != nil {
		policy.OnWait(total)
	}
	if sleepErr := policy.sleep(ctx, total); sleepErr != nil {
		var zero T
		return zero, sleepErr
	}
	return op(ctx)
}
