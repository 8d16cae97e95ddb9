package model

import (
	"time"

	"github.com/google/uuid"
)

// WheelState is the polled view of the wheel.
type WheelState struct {
	Rotation        float64
	DisplayRotation float64
	TargetRotation  float64
	Spinning        bool
	SegmentCount    int
	CurrentSpinID   uuid.UUID
	LastResult      *SpinResult
}

// SpinTicket answers a spin request. Started is false when a spin was
// already in flight; SpinID then names that spin.
type SpinTicket struct {
	SpinID         uuid.UUID
	TargetRotation float64
	Started        bool
}

// SpinResult is the prize a finished spin landed on.
type SpinResult struct {
	SpinID     uuid.UUID
	Index      int
	Label      string
	Color      string
	FinalAngle float64
	FinishedAt time.Time
}
