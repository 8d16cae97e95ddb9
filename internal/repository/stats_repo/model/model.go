package model

// Observation is one finished spin inside the window.
type Observation struct {
	Label  string
	Shares map[string]float64
}

// WheelStats is the running state behind the statistics endpoint.
type WheelStats struct {
	TotalSpins int
	WindowSize int
	Window     []Observation
}
