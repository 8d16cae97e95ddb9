package wheel

import (
	"fmt"
	"time"
)

const (
	// DefaultDuration is the length of one spin timeline.
	DefaultDuration = 4000 * time.Millisecond
	// DefaultMinRevolutions and DefaultMaxRevolutions bound the whole-plus-fractional
	// turns drawn per spin: [min, max).
	DefaultMinRevolutions = 5.0
	DefaultMaxRevolutions = 10.0
)

// Phase is the engine's state machine position.
type Phase int

const (
	Idle Phase = iota
	Spinning
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a read-only view of the rotation state.
type State struct {
	CurrentRotation float64
	TargetRotation  float64
	Phase           Phase
}

// Spinning reports whether a spin is in flight.
func (s State) Spinning() bool {
	return s.Phase == Spinning
}

// Option configures an Engine.
type Option func(*Engine)

// WithDuration overrides DefaultDuration. Non-positive values are ignored.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.duration = d
		}
	}
}

// WithRevolutions overrides the revolution range. Invalid ranges are ignored.
func WithRevolutions(minRev, maxRev float64) Option {
	return func(e *Engine) {
		if minRev >= 0 && maxRev > minRev {
			e.minRev, e.maxRev = minRev, maxRev
		}
	}
}

// WithSink routes presentation events to sink.
func WithSink(sink EventSink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// Engine owns the rotation state and drives IDLE → SPINNING → IDLE cycles.
// Rotation starts at 0 and only ever accumulates; it is never normalized, so
// each spin eases on from where the previous one stopped.
type Engine struct {
	clock    Clock
	rng      RNG
	sink     EventSink
	duration time.Duration
	minRev   float64
	maxRev   float64

	phase         Phase
	current       float64
	target        float64
	startRotation float64
	startedAt     time.Time
	snapshot      []Segment
	pending       TickToken

	last    SpinFinished
	hasLast bool
}

// NewEngine creates an idle engine at rotation 0.
func NewEngine(clock Clock, rng RNG, opts ...Option) *Engine {
	e := &Engine{
		clock:    clock,
		rng:      rng,
		sink:     SinkFuncs{},
		duration: DefaultDuration,
		minRev:   DefaultMinRevolutions,
		maxRev:   DefaultMaxRevolutions,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = DefaultRNG()
	}
	return e
}

// Start begins a spin over a snapshot of segments and returns immediately
// after scheduling the first tick. It fails with ErrInvalidState while a spin
// is in flight and with ErrEmptySet when segments is empty; neither failure
// changes any state. A started spin cannot be cancelled.
func (e *Engine) Start(segments []Segment) error {
	if e.phase == Spinning {
		return ErrInvalidState
	}
	if len(segments) == 0 {
		return ErrEmptySet
	}

	revolutions := e.minRev + e.rng.Float64()*(e.maxRev-e.minRev)
	stopAngle := e.rng.Float64() * 360

	e.snapshot = make([]Segment, len(segments))
	copy(e.snapshot, segments)
	e.startRotation = e.current
	e.target = e.current + revolutions*360 + stopAngle
	e.startedAt = e.clock.Now()
	e.phase = Spinning

	e.sink.SpinStarted(SpinStarted{
		StartRotation:  e.startRotation,
		TargetRotation: e.target,
		Revolutions:    revolutions,
		StopAngle:      stopAngle,
		SegmentCount:   len(e.snapshot),
	})
	e.pending = e.clock.RequestTick(e.tick)
	return nil
}

func (e *Engine) tick(now time.Time) {
	if e.phase != Spinning {
		return
	}

	progress := float64(now.Sub(e.startedAt)) / float64(e.duration)
	if progress >= 1 {
		e.current = e.target
		e.sink.RotationUpdated(e.current)
		e.finish()
		return
	}

	e.current = e.startRotation + (e.target-e.startRotation)*EaseOutCubic(progress)
	e.sink.RotationUpdated(e.current)
	e.pending = e.clock.RequestTick(e.tick)
}

func (e *Engine) finish() {
	e.phase = Idle
	e.pending = 0

	seg, idx, err := Resolve(e.target, e.snapshot)
	e.snapshot = nil
	if err != nil {
		// Start never accepts an empty snapshot.
		return
	}

	e.last = SpinFinished{Index: idx, Segment: seg, FinalAngle: e.target}
	e.hasLast = true
	e.sink.SpinFinished(e.last)
}

// State returns the current rotation state.
func (e *Engine) State() State {
	return State{
		CurrentRotation: e.current,
		TargetRotation:  e.target,
		Phase:           e.phase,
	}
}

// Spinning reports whether a spin is in flight.
func (e *Engine) Spinning() bool {
	return e.phase == Spinning
}

// PendingTick returns the token of the outstanding tick request, or 0 when idle.
func (e *Engine) PendingTick() TickToken {
	return e.pending
}

// Duration returns the configured timeline length.
func (e *Engine) Duration() time.Duration {
	return e.duration
}

// LastResult returns the most recent finished spin.
func (e *Engine) LastResult() (SpinFinished, bool) {
	return e.last, e.hasLast
}
