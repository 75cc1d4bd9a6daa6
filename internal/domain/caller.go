package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CallerID はTelegramユーザーを一意に識別するID
type CallerID int64

// ChatID はメッセージ送信先のチャットID
type ChatID int64

var ErrInvalidCallerID = errors.New("caller id must be a non-zero integer")

func NewCallerID(value int64) (CallerID, error) {
	if value == 0 {
		return 0, ErrInvalidCallerID
	}
	return CallerID(value), nil
}

func ParseCallerID(value string) (CallerID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, ErrInvalidCallerID
	}
	return NewCallerID(n)
}

func (id CallerID) Int64() int64 {
	return int64(id)
}

func (id CallerID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ChatID は個別チャットのIDを返す。Telegramではプライベートチャットのチャット ID はユーザー ID と一致する
func (id CallerID) ChatID() ChatID {
	return ChatID(id)
}

func (id ChatID) Int64() int64 {
	return int64(id)
}

// Caller はリクエストを送ってきた利用者
type Caller struct {
	ID        CallerID
	FirstName string
	Username  string
}

// Mention はメッセージ本文に埋め込む表示名を返す
func (c Caller) Mention() string {
	if c.FirstName != "" {
		return c.FirstName
	}
	if c.Username != "" {
		return "@" + c.Username
	}
	return c.ID.String()
}

// PrivilegedSet は管理者として扱うCallerIDの集合
type PrivilegedSet struct {
	ids map[CallerID]struct{}
}

func NewPrivilegedSet(ids []int64) PrivilegedSet {
	m := make(map[CallerID]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		m[CallerID(id)] = struct{}{}
	}
	return PrivilegedSet{ids: m}
}

// ParsePrivilegedSet は設定ファイルや環境変数のID文字列から集合を作る。
// 空文字列は無視し、数値でないものがあればエラーを返す
func ParsePrivilegedSet(values []string) (PrivilegedSet, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		id, err := ParseCallerID(v)
		if err != nil {
			return PrivilegedSet{}, fmt.Errorf("invalid caller id %q: %w", v, err)
		}
		ids = append(ids, id.Int64())
	}
	return NewPrivilegedSet(ids), nil
}

func (s PrivilegedSet) Contains(id CallerID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s PrivilegedSet) Len() int {
	return len(s.ids)
}
