package domain

import "time"

type ThrottleMark struct {
	callerID       CallerID
	lastAcceptedAt time.Time
}

func NewThrottleMark(callerID CallerID, lastAcceptedAt time.Time) ThrottleMark {
	return ThrottleMark{
		callerID:       callerID,
		lastAcceptedAt: lastAcceptedAt.UTC(),
	}
}

func (m ThrottleMark) CallerID() CallerID {
	return m.callerID
}

func (m ThrottleMark) LastAcceptedAt() time.Time {
	return m.lastAcceptedAt
}

// Wait はクールダウン終了までの残り時間を返す。ウィンドウ外なら0
func (m ThrottleMark) Wait(now time.Time, cooldown time.Duration) time.Duration {
	elapsed := now.Sub(m.lastAcceptedAt)
	if elapsed >= cooldown {
		return 0
	}
	return cooldown - elapsed
}

// ThrottleDecision はThrottleRepository.Acquireの結果
type ThrottleDecision struct {
	Accepted bool
	Wait     time.Duration
}
