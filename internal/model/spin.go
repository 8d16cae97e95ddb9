package model

import (
	"time"

	"github.com/google/uuid"
)

// SpinRecord is one journal row.
type SpinRecord struct {
	ID           uuid.UUID
	Label        string
	SegmentIndex int
	Color        string
	FinalAngle   float64
	SegmentCount int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// SpinObservation feeds the fairness statistics: the label that won and the
// share of the wheel each label held when the spin started.
type SpinObservation struct {
	Label  string
	Shares map[string]float64
}

type LabelStats struct {
	Label    string
	Hits     int
	Expected float64
}

// SpinStats summarizes the recent window of spins.
type SpinStats struct {
	TotalSpins int
	WindowSize int
	Window     int
	Labels     []LabelStats
	ChiSquare  float64
	PValue     float64
}
