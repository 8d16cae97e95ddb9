package clock

import (
	"context"
	"sync"
	"time"

	"lucky_wheel/pkg/wheel"
)

// DefaultFrameInterval approximates a 60 Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithLocker makes every frame run its callbacks while holding l, so they
// share one logical thread with whatever else the host guards with l.
func WithLocker(l sync.Locker) TickerOption {
	return func(t *Ticker) {
		t.locker = l
	}
}

// Ticker is a wall-clock frame scheduler. Run must be started for callbacks
// to fire.
type Ticker struct {
	interval time.Duration
	locker   sync.Locker

	mtx     sync.Mutex
	seq     uint64
	pending []func(time.Time)
}

// NewTicker returns a Ticker firing every interval (DefaultFrameInterval when
// interval is not positive).
func NewTicker(interval time.Duration, opts ...TickerOption) *Ticker {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	t := &Ticker{interval: interval}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Ticker) Now() time.Time {
	return time.Now()
}

func (t *Ticker) RequestTick(fn func(time.Time)) wheel.TickToken {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.seq++
	t.pending = append(t.pending, fn)
	return wheel.TickToken(t.seq)
}

// Run fires frames until ctx is done. Callbacks still pending at that point
// are dropped.
func (t *Ticker) Run(ctx context.Context) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			t.mtx.Lock()
			t.pending = nil
			t.mtx.Unlock()
			return
		case now := <-tk.C:
			t.frame(now)
		}
	}
}

func (t *Ticker) frame(now time.Time) {
	t.mtx.Lock()
	batch := t.pending
	t.pending = nil
	t.mtx.Unlock()

	if len(batch) == 0 {
		return
	}

	if t.locker != nil {
		t.locker.Lock()
		defer t.locker.Unlock()
	}
	for _, fn := range batch {
		fn(now)
	}
}
