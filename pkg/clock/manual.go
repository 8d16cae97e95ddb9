package clock

import (
	"sync"
	"time"

	"lucky_wheel/pkg/wheel"
)

// Manual is a clock that only moves when told to. Each Advance is one frame:
// it fires every callback requested before the call, in request order.
// Callbacks requested during a frame wait for the next one.
type Manual struct {
	mtx     sync.Mutex
	now     time.Time
	seq     uint64
	pending []func(time.Time)
}

// NewManual returns a Manual clock reading start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.now
}

func (m *Manual) RequestTick(fn func(time.Time)) wheel.TickToken {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.seq++
	m.pending = append(m.pending, fn)
	return wheel.TickToken(m.seq)
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *Manual) Pending() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return len(m.pending)
}

// Advance moves time forward by d and runs one frame. It returns the number
// of callbacks fired.
func (m *Manual) Advance(d time.Duration) int {
	m.mtx.Lock()
	m.now = m.now.Add(d)
	now := m.now
	batch := m.pending
	m.pending = nil
	m.mtx.Unlock()

	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}

// RunFrames advances by frame until nothing is pending or maxFrames frames
// have run, and returns the number of frames run.
func (m *Manual) RunFrames(frame time.Duration, maxFrames int) int {
	n := 0
	for n < maxFrames && m.Pending() > 0 {
		m.Advance(frame)
		n++
	}
	return n
}
