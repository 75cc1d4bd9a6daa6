package usecase

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRecipientBlocked は相手がボットをブロックしている場合のエラー
	ErrRecipientBlocked = errors.New("recipient blocked the bot")

	// ErrRecipientDeactivated は相手のアカウントが削除済みの場合のエラー
	ErrRecipientDeactivated = errors.New("recipient account is deactivated")

	// ErrNotChatMember はメンバーシップ確認で非メンバーと判定された場合のエラー
	ErrNotChatMember = errors.New("caller is not a member of the required chat")

	// ErrTooLarge は転送サイズが上限を超えた場合のエラー
	ErrTooLarge = errors.New("file exceeds the upload size limit")

	// ErrNoArchiveDestination はアーカイブ先が未設定の場合のエラー
	ErrNoArchiveDestination = errors.New("archive destination is not configured")
)

// RateLimitError はトランスポートが指定時間の待機を要求した場合のエラー
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func NewRateLimitError(retryAfter time.Duration, err error) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter, Err: err}
}

func (e *RateLimitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
	}
	return fmt.Sprintf("rate limited: retry after %s: %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// RetryAfter はエラーがRateLimitErrorであれば待機時間を返す
func RetryAfter(err error) (time.Duration, bool) {
	if err == nil {
		return 0, false
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl.RetryAfter, true
	}
	return 0, false
}
