//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_repository.go -package=domain
package domain

import (
	"context"
	"time"
)

type CallerRepository interface {
	// Register は未登録の場合のみ追加し、新規追加されたかを返す
	Register(ctx context.Context, id CallerID) (bool, error)
	List(ctx context.Context) ([]CallerID, error)
}

type AccessTokenRepository interface {
	// FindByCaller はトークンが存在しない、または読み取れない場合 ErrNotFound を返す
	FindByCaller(ctx context.Context, id CallerID) (*AccessToken, error)
	Save(ctx context.Context, token *AccessToken) error
	// IssueIfAbsent は now 時点で有効なトークンがあればそれを返し、なければ issue で生成して保存する。
	// 2番目の戻り値は新規発行したかどうか
	IssueIfAbsent(ctx context.Context, id CallerID, now time.Time, issue func() (*AccessToken, error)) (*AccessToken, bool, error)
}

type ThrottleRepository interface {
	// FindByCaller はマークが存在しない、または読み取れない場合 ErrNotFound を返す
	FindByCaller(ctx context.Context, id CallerID) (ThrottleMark, error)
	Save(ctx context.Context, mark ThrottleMark) error
	// Acquire はクールダウン判定とマーク更新を1回のロック内で行う
	Acquire(ctx context.Context, id CallerID, now time.Time, cooldown time.Duration) (ThrottleDecision, error)
}
