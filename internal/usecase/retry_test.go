package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/na2na-p/terabridge/internal/usecase"
)

func TestRetryOnceAfterWait(t *testing.T) {
	rateLimited := usecase.NewRateLimitError(3*time.Second, errors.New("Too Many Requests"))

	tests := []struct {
		name      string
		results   []error
		wantCalls int
		wantSleep time.Duration
		wantErr   bool
	}{
		{
			name:      "正常系: 初回成功の場合、待機しない",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "正常系: レート制限後の再試行で成功する",
			results:   []error{rateLimited, nil},
			wantCalls: 2,
			wantSleep: 5 * time.Second,
		},
		{
			name:      "異常系: 再試行も失敗した場合、3回目は実行しない",
			results:   []error{rateLimited, rateLimited},
			wantCalls: 2,
			wantSleep: 5 * time.Second,
			wantErr:   true,
		},
		{
			name:      "異常系: レート制限以外のエラーは再試行しない",
			results:   []error{errors.New("bad request")},
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var slept, waited time.Duration
			calls := 0
			policy := usecase.RetryPolicy{
				Margin: 2 * time.Second,
				Sleep: func(_ context.Context, d time.Duration) error {
					slept += d
					return nil
				},
				OnWait: func(d time.Duration) { waited = d },
			}

			got, err := usecase.RetryOnceAfterWait(context.Background(), policy, func(context.Context) (int, error) {
				err := tt.results[calls]
				calls++
				if err != nil {
					return 0, err
				}
				return calls, nil
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("error mismatch: wantErr %v, got %v", tt.wantErr, err)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls mismatch: want %d, got %d", tt.wantCalls, calls)
			}
			if slept != tt.wantSleep || waited != tt.wantSleep {
				t.Errorf("sleep mismatch: want %s, got slept=%s waited=%s", tt.wantSleep, slept, waited)
			}
			if !tt.wantErr && got != tt.wantCalls {
				t.Errorf("value mismatch: want %d, got %d", tt.wantCalls, got)
			}
		})
	}
}

func TestRetryOnceAfterWait_ContextCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := usecase.RetryOnceAfterWait(ctx, usecase.RetryPolicy{Margin: time.Second}, func(context.Context) (struct{}, error) {
		calls++
		return struct{}{}, usecase.NewRateLimitError(time.Hour, nil)
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls mismatch: want 1, got %d", calls)
	}
}

func TestRetryAfter(t *testing.T) {
	wrapped := errors.Join(errors.New("send failed"), usecase.NewRateLimitError(7*time.Second, nil))

	got, ok := usecase.RetryAfter(wrapped)
	if !ok || got != 7*time.Second {
		t.Fatalf("want 7s, got %s (ok=%v)", got, ok)
	}
	if _, ok := usecase.RetryAfter(errors.New("plain")); ok {
		t.Error("plain error must not be treated as rate limit")
	}
	if _, ok := usecase.RetryAfter(nil); ok {
		t.Error("nil must not be treated as rate limit")
	}
}
