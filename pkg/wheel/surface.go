package wheel

// SectorFill is the paint instruction for one sector.
type SectorFill struct {
	StartAngle float64
	EndAngle   float64
	Color      string
}

// Surface is the drawing target a wheel is painted onto. Geometry is always
// drawn unrotated; ApplyRotation turns the whole rendered image.
type Surface interface {
	DrawSectors(sectors []SectorFill, outerRadius float64)
	DrawLabel(text string, midAngle, radiusFraction float64)
	DrawHub(radius float64)
	ApplyRotation(degrees float64)
}

// Draw paints l onto s: sectors first, then labels, then the hub on top.
// An empty layout draws nothing.
func Draw(s Surface, l Layout) {
	if l.Empty() {
		return
	}

	fills := make([]SectorFill, len(l.Sectors))
	for i, sec := range l.Sectors {
		fills[i] = SectorFill{
			StartAngle: sec.StartAngle,
			EndAngle:   sec.EndAngle,
			Color:      sec.Segment.Color,
		}
	}
	s.DrawSectors(fills, l.OuterRadius)

	for _, sec := range l.Sectors {
		s.DrawLabel(sec.Segment.Label, sec.MidAngle, l.LabelRadius)
	}

	s.DrawHub(l.HubRadius)
}

// Render lays segments out on g, paints them and applies the rotation.
func Render(s Surface, segments []Segment, g Geometry, rotationDegrees float64) Layout {
	l := ComputeLayout(segments, g)
	Draw(s, l)
	s.ApplyRotation(rotationDegrees)
	return l
}
