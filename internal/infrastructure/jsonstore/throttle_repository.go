package jsonstore

import (
	"context"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

// ThrottleRepository は domain.ThrottleRepository の実装
type ThrottleRepository struct {
	store *Store
}

func NewThrottleRepository(store *Store) *ThrottleRepository {
	return &ThrottleRepository{store: store}
}

func (r *ThrottleRepository) FindByCaller(_ context.Context, id domain.CallerID) (domain.ThrottleMark, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	mark, ok := r.findLocked(id)
	if !ok {
		return domain.ThrottleMark{}, domain.ErrNotFound
	}
	return mark, nil
}

func (r *ThrottleRepository) Save(_ context.Context, mark domain.ThrottleMark) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.putLocked(mark)
	r.store.saveLocked()
	return nil
}

func (r *ThrottleRepository) Acquire(_ context.Context, id domain.CallerID, now time.Time, cooldown time.Duration) (domain.ThrottleDecision, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if mark, ok := r.findLocked(id); ok {
		if wait := mark.Wait(now, cooldown); wait > 0 {
			return domain.ThrottleDecision{Wait: wait}, nil
		}
	}

	r.putLocked(domain.NewThrottleMark(id, now))
	r.store.saveLocked()
	return domain.ThrottleDecision{Accepted: true}, nil
}

func (r *ThrottleRepository) findLocked(id domain.CallerID) (domain.ThrottleMark, bool) {
	at, ok := parseTimestamp(r.store.doc.SpamTracker[id.String()])
	if !ok {
		return domain.ThrottleMark{}, false
	}
	return domain.NewThrottleMark(id, at), true
}

func (r *ThrottleRepository) putLocked(mark domain.ThrottleMark) {
	r.store.doc.SpamTracker[mark.CallerID().String()] = formatTimestamp(mark.LastAcceptedAt())
}
