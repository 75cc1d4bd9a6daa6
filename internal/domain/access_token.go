package domain

import (
	"errors"
	"time"
)

var ErrEmptyTokenValue = errors.New("token value cannot be empty")

// AccessToken は利用者にダウンロード機能を一定期間許可するトークン
type AccessToken struct {
	value     string
	issuedTo  CallerID
	expiresAt time.Time
}

func NewAccessToken(value string, issuedTo CallerID, expiresAt time.Time) (*AccessToken, error) {
	if value == "" {
		return nil, ErrEmptyTokenValue
	}
	if issuedTo == 0 {
		return nil, ErrInvalidCallerID
	}
	return &AccessToken{
		value:     value,
		issuedTo:  issuedTo,
		expiresAt: expiresAt.UTC(),
	}, nil
}

func (t *AccessToken) Value() string {
	return t.value
}

func (t *AccessToken) IssuedTo() CallerID {
	return t.issuedTo
}

func (t *AccessToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// IsValidAt は now が有効期限より前である場合のみ true を返す
func (t *AccessToken) IsValidAt(now time.Time) bool {
	return now.Before(t.expiresAt)
}

// Remaining は残り有効期間を返す。期限切れの場合は0
func (t *AccessToken) Remaining(now time.Time) time.Duration {
	if !t.IsValidAt(now) {
		return 0
	}
	return t.expiresAt.Sub(now)
}

// ExpiredFor は期限切れからの経過時間を返す。有効な場合は0
func (t *AccessToken) ExpiredFor(now time.Time) time.Duration {
	if t.IsValidAt(now) {
		return 0
	}
	return now.Sub(t.expiresAt)
}
