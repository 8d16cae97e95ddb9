package wheel

import "math"

// ResolveIndex maps a final absolute rotation onto the index of the segment
// under the 12 o'clock pointer, for n equal-width segments.
//
// The wheel turns clockwise by rotation, so the original angle now under the
// pointer is 360 − rotation. Half a segment is added so the pointer selects
// the segment whose body it sits on rather than the edge before it.
func ResolveIndex(rotation float64, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptySet
	}
	normalized := math.Mod(360-math.Mod(rotation, 360), 360)
	if normalized < 0 {
		normalized += 360
	}
	span := 360 / float64(n)
	idx := int(math.Floor((normalized+span/2)/span)) % n
	return idx, nil
}

// Resolve returns the segment selected by rotation.
func Resolve(rotation float64, segments []Segment) (Segment, int, error) {
	idx, err := ResolveIndex(rotation, len(segments))
	if err != nil {
		return Segment{}, 0, err
	}
	return segments[idx], idx, nil
}

// DisplayRotation folds an absolute rotation into [0, 360).
func DisplayRotation(rotation float64) float64 {
	d := math.Mod(rotation, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// EaseOutCubic is 1 − (1−p)³ with p clamped to [0, 1].
func EaseOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(p, 1))
	q := 1 - p
	return 1 - q*q*q
}
