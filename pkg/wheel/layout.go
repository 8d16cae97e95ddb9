package wheel

import "math"

const (
	// DefaultMargin is the gap in pixels between the wheel rim and the canvas edge.
	DefaultMargin = 30.0
	// DefaultHubRadius is the radius of the center hub in pixels.
	DefaultHubRadius = 40.0
	// DefaultLabelRadius is where labels sit, as a fraction of the outer radius.
	DefaultLabelRadius = 0.7
)

// Geometry describes the canvas a wheel is laid out on.
type Geometry struct {
	Width       float64
	Height      float64
	Margin      float64
	HubRadius   float64
	LabelRadius float64
}

// DefaultGeometry returns the stock margins for a width×height canvas.
func DefaultGeometry(width, height float64) Geometry {
	return Geometry{
		Width:       width,
		Height:      height,
		Margin:      DefaultMargin,
		HubRadius:   DefaultHubRadius,
		LabelRadius: DefaultLabelRadius,
	}
}

// Sector is the angular span [StartAngle, EndAngle) a segment occupies,
// in radians, measured clockwise on screen from 3 o'clock.
type Sector struct {
	Index      int
	StartAngle float64
	EndAngle   float64
	MidAngle   float64
	Segment    Segment
}

// Layout is everything a surface needs to paint an unrotated wheel.
type Layout struct {
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	HubRadius   float64
	LabelRadius float64
	Sectors     []Sector
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return len(l.Sectors) == 0
}

// ComputeLayout maps segments onto the canvas. Segment i spans
// [i·2π/N − π/2, (i+1)·2π/N − π/2), so segment 0 starts at 12 o'clock.
// It is pure and cheap enough to call on every redraw.
func ComputeLayout(segments []Segment, g Geometry) Layout {
	outer := math.Min(g.Width, g.Height)/2 - g.Margin
	if outer < 0 {
		outer = 0
	}
	l := Layout{
		CenterX:     g.Width / 2,
		CenterY:     g.Height / 2,
		OuterRadius: outer,
		HubRadius:   g.HubRadius,
		LabelRadius: g.LabelRadius,
	}
	n := len(segments)
	if n == 0 {
		return l
	}

	span := 2 * math.Pi / float64(n)
	l.Sectors = make([]Sector, n)
	for i, seg := range segments {
		start := float64(i)*span - math.Pi/2
		l.Sectors[i] = Sector{
			Index:      i,
			StartAngle: start,
			EndAngle:   float64(i+1)*span - math.Pi/2,
			MidAngle:   start + span/2,
			Segment:    seg,
		}
	}
	return l
}
