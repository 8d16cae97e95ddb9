package wheel

import "time"

// TickToken identifies one requested tick.
type TickToken uint64

// Clock is the host's frame scheduler. RequestTick runs fn once, on the next
// frame, with a monotonic timestamp. The engine re-requests a tick from inside
// fn until its timeline completes.
type Clock interface {
	Now() time.Time
	RequestTick(fn func(now time.Time)) TickToken
}
