package jsonstore

import (
	"context"
	"errors"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

// AccessTokenRepository は domain.AccessTokenRepository の実装
type AccessTokenRepository struct {
	store *Store
}

func NewAccessTokenRepository(store *Store) *AccessTokenRepository {
	return &AccessTokenRepository{store: store}
}

func (r *AccessTokenRepository) FindByCaller(_ context.Context, id domain.CallerID) (*domain.AccessToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	token, ok := r.findLocked(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return token, nil
}

func (r *AccessTokenRepository) Save(_ context.Context, token *domain.AccessToken) error {
	if token == nil {
		return errors.New("token is nil")
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.putLocked(token)
	r.store.saveLocked()
	return nil
}

func (r *AccessTokenRepository) IssueIfAbsent(_ context.Context, id domain.CallerID, now time.Time, issue func() (*domain.AccessToken, error)) (*domain.AccessToken, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing, ok := r.findLocked(id); ok && existing.IsValidAt(now) {
		return existing, false, nil
	}

	token, err := issue()
	if err != nil {
		return nil, false, err
	}
	r.putLocked(token)
	r.store.saveLocked()
	return token, true, nil
}

// findLocked は値や期限が読み取れないレコードを存在しないものとして扱う
func (r *AccessTokenRepository) findLocked(id domain.CallerID) (*domain.AccessToken, bool) {
	rec, ok := r.store.doc.Tokens[id.String()]
	if !ok {
		return nil, false
	}
	expiresAt, ok := parseTimestamp(rec.Expires)
	if !ok {
		return nil, false
	}
	token, err := domain.NewAccessToken(rec.Token, id, expiresAt)
	if err != nil {
		return nil, false
	}
	return token, true
}

func (r *AccessTokenRepository) putLocked(token *domain.AccessToken) {
	r.store.doc.Tokens[token.IssuedTo().String()] = tokenRecord{
		Token:   token.Value(),
		Expires: formatTimestamp(token.ExpiresAt()),
	}
}
