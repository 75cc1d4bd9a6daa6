package jsonstore

import (
	"context"

	"github.com/na2na-p/terabridge/internal/domain"
)

// CallerRepository は domain.CallerRepository の実装
type CallerRepository struct {
	store *Store
}

func NewCallerRepository(store *Store) *CallerRepository {
	return &CallerRepository{store: store}
}

func (r *CallerRepository) Register(_ context.Context, id domain.CallerID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.addUserLocked(id.Int64()) {
		return false, nil
	}
	r.store.saveLocked()
	return true, nil
}

// List は登録順に返す
func (r *CallerRepository) List(_ context.Context) ([]domain.CallerID, error) {
	r.store.mu.Lock()
	ids := r.store.userIDsLocked()
	r.store.mu.Unlock()

	callers := make([]domain.CallerID, 0, len(ids))
	for _, id := range ids {
		callers = append(callers, domain.CallerID(id))
	}
	return callers, nil
}
