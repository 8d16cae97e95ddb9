// Package wheel is the selection and rendering engine of a prize wheel.
//
// A SegmentSet holds the ordered, colored slices. ComputeLayout maps the set
// onto a circular surface, with segment 0 starting at 12 o'clock and the rest
// following clockwise. An Engine turns a spin request into an eased rotation
// timeline driven by an injected Clock and resolves the final angle back to a
// segment.
//
// Drawing, timing and randomness are ports (Surface, Clock, RNG) supplied by
// the host, so a wheel can be driven frame by frame in tests without waiting
// on a wall clock.
//
// Nothing in this package is safe for concurrent use. A host that serves
// several goroutines must serialize every call, including clock callbacks.
package wheel
