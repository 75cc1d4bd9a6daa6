package usecase

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// progressThrottle は進捗通知を interval ごとに最大1回へ間引く。
// 通知されるバイト数は単調非減少で、間引かれた更新は破棄される
type progressThrottle struct {
	mu        sync.Mutex
	interval  time.Duration
	now       func() time.Time
	startedAt time.Time
	lastEmit  time.Time
	emitted   bool
	lastBytes int64
	emit      func(current, total int64, elapsed time.Duration)
}

func newProgressThrottle(interval time.Duration, now func() time.Time, emit func(current, total int64, elapsed time.Duration)) *progressThrottle {
	return &progressThrottle{
		interval:  interval,
		now:       now,
		startedAt: now(),
		emit:      emit,
	}
}

func (p *progressThrottle) Update(current, total int64) {
	p.mu.Lock()
	now := p.now()
	if current < p.lastBytes {
		p.mu.Unlock()
		return
	}
	if p.emitted && now.Sub(p.lastEmit) < p.interval {
		p.mu.Unlock()
		return
	}
	p.emitted = true
	p.lastEmit = now
	p.lastBytes = current
	elapsed := now.Sub(p.startedAt)
	p.mu.Unlock()

	p.emit(current, total, elapsed)
}

// progressReader は読み出したバイト数を onRead に通知する
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	onRead func(current, total int64)
}

func (r *progressReader) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	if n > 0 {
		r.read += int64(n)
		r.onRead(r.read, r.total)
	}
	return n, err
}

func progressText(phase string, current, total int64, elapsed time.Duration) string {
	var sb strings.Builder
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = 0.01
	}
	speed := float64(current) / seconds

	if total > 0 {
		percent := float64(current) * 100 / float64(total)
		fmt.Fprintf(&sb, "%s: %s / %s (%.1f%%)\n", phase, humanize.IBytes(uint64(current)), humanize.IBytes(uint64(total)), percent)
	} else {
		fmt.Fprintf(&sb, "%s: %s\n", phase, humanize.IBytes(uint64(current)))
	}
	fmt.Fprintf(&sb, "Speed: %s/s\n", humanize.IBytes(uint64(speed)))
	if total > 0 && speed > 0 && current <= total {
		eta := time.Duration(float64(total-current)/speed) * time.Second
		fmt.Fprintf(&sb, "ETA: %s | ", formatDuration(eta))
	}
	fmt.Fprintf(&sb, "Elapsed: %s", formatDuration(elapsed))
	return sb.String()
}
