package wheel

import "time"

type SpinResultResponse struct {
	SpinID     string    `json:"spin_id"`
	Index      int       `json:"index"`
	Label      string    `json:"label"`
	Color      string    `json:"color"`
	FinalAngle float64   `json:"final_angle"` // absolute, never normalized
	FinishedAt time.Time `json:"finished_at"`
}

type StateResponse struct {
	Rotation        float64             `json:"rotation"`
	DisplayRotation float64             `json:"display_rotation"` // rotation mod 360
	TargetRotation  float64             `json:"target_rotation"`
	Spinning        bool                `json:"spinning"`
	SegmentCount    int                 `json:"segment_count"`
	CurrentSpinID   string              `json:"current_spin_id,omitempty"`
	LastResult      *SpinResultResponse `json:"last_result,omitempty"`
}

type SpinResponse struct {
	SpinID         string  `json:"spin_id"`
	TargetRotation float64 `json:"target_rotation"`
	Started        bool    `json:"started"` // false: a spin was already running
}

// Angles are radians, 0 at 3 o'clock, growing clockwise on screen.
type SectorResponse struct {
	Index      int     `json:"index"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	MidAngle   float64 `json:"mid_angle"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
}

type LayoutResponse struct {
	CenterX     float64          `json:"center_x"`
	CenterY     float64          `json:"center_y"`
	OuterRadius float64          `json:"outer_radius"`
	HubRadius   float64          `json:"hub_radius"`
	LabelRadius float64          `json:"label_radius"`
	Sectors     []SectorResponse `json:"sectors"`
}

type SpinRecordResponse struct {
	SpinID       string    `json:"spin_id"`
	Label        string    `json:"label"`
	SegmentIndex int       `json:"segment_index"`
	Color        string    `json:"color"`
	FinalAngle   float64   `json:"final_angle"`
	SegmentCount int       `json:"segment_count"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

type HistoryResponse struct {
	Spins []SpinRecordResponse `json:"spins"`
}

type LabelStatsResponse struct {
	Label    string  `json:"label"`
	Hits     int     `json:"hits"`
	Expected float64 `json:"expected"`
}

type StatsResponse struct {
	TotalSpins int                  `json:"total_spins"`
	WindowSize int                  `json:"window_size"`
	Window     int                  `json:"window"` // spins inside the window
	Labels     []LabelStatsResponse `json:"labels"`
	ChiSquare  float64              `json:"chi_square"`
	PValue     float64              `json:"p_value"`
}

type SegmentRequest struct {
	Label string `json:"label"`
	Color string `json:"color"` // #RRGGBB
}

type SegmentEditRequest struct {
	Field string `json:"field"` // "label" or "color"
	Value string `json:"value"`
}

type SegmentResponse struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type SegmentsResponse struct {
	Segments []SegmentResponse `json:"segments"`
}
