package wheel

// SpinStarted is emitted once per accepted Start.
type SpinStarted struct {
	StartRotation  float64
	TargetRotation float64
	Revolutions    float64
	StopAngle      float64
	SegmentCount   int
}

// SpinFinished carries the resolved segment and the final absolute angle.
type SpinFinished struct {
	Index      int
	Segment    Segment
	FinalAngle float64
}

// EventSink receives presentation events. Methods run on the caller's thread:
// SpinStarted inside Start, the others inside clock callbacks.
type EventSink interface {
	SpinStarted(ev SpinStarted)
	RotationUpdated(degrees float64)
	SpinFinished(ev SpinFinished)
}

// SinkFuncs adapts plain functions to EventSink. Nil fields are skipped.
type SinkFuncs struct {
	OnStarted  func(SpinStarted)
	OnRotation func(float64)
	OnFinished func(SpinFinished)
}

func (f SinkFuncs) SpinStarted(ev SpinStarted) {
	if f.OnStarted != nil {
		f.OnStarted(ev)
	}
}

func (f SinkFuncs) RotationUpdated(degrees float64) {
	if f.OnRotation != nil {
		f.OnRotation(degrees)
	}
}

func (f SinkFuncs) SpinFinished(ev SpinFinished) {
	if f.OnFinished != nil {
		f.OnFinished(ev)
	}
}
