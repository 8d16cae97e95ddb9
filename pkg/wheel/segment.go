package wheel

import (
	"fmt"
	"regexp"
	"strings"
)

// MinCommitSegments is the smallest set Commit accepts.
const MinCommitSegments = 2

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Segment is one labeled, colored slice of the wheel.
type Segment struct {
	Label string
	Color string
}

// ValidColor reports whether c is a #RRGGBB hex string.
func ValidColor(c string) bool {
	return hexColor.MatchString(c)
}

func normalizeLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrInvalidLabel
	}
	return label, nil
}

func checkColor(c string) error {
	if !ValidColor(c) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return nil
}

// SegmentSet is an ordered collection of segments. Insertion order is render
// order and angular order.
//
// The zero value is an empty, usable set.
type SegmentSet struct {
	segments []Segment
}

// NewSegmentSet builds a set from segments, validating each one the same way Add does.
func NewSegmentSet(segments ...Segment) (*SegmentSet, error) {
	s := &SegmentSet{segments: make([]Segment, 0, len(segments))}
	for i, seg := range segments {
		if err := s.Add(seg.Label, seg.Color); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return s, nil
}

// Len returns the number of segments.
func (s *SegmentSet) Len() int {
	return len(s.segments)
}

// At returns the segment at index i.
func (s *SegmentSet) At(i int) (Segment, error) {
	if err := s.checkIndex(i); err != nil {
		return Segment{}, err
	}
	return s.segments[i], nil
}

// Segments returns a copy of the segments in order.
func (s *SegmentSet) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Add appends a segment. The label is trimmed before it is stored.
func (s *SegmentSet) Add(label, color string) error {
	label, err := normalizeLabel(label)
	if err != nil {
		return err
	}
	if err := checkColor(color); err != nil {
		return err
	}
	s.segments = append(s.segments, Segment{Label: label, Color: color})
	return nil
}

// RemoveAt removes the segment at index i.
func (s *SegmentSet) RemoveAt(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.segments = append(s.segments[:i], s.segments[i+1:]...)
	return nil
}

// Clear empties the set.
func (s *SegmentSet) Clear() {
	s.segments = nil
}

// UpdateLabel replaces the label at index i.
func (s *SegmentSet) UpdateLabel(i int, label string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	label, err := normalizeLabel(label)
	if err != nil {
		return err
	}
	s.segments[i].Label = label
	return nil
}

// UpdateColor replaces the color at index i.
func (s *SegmentSet) UpdateColor(i int, color string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if err := checkColor(color); err != nil {
		return err
	}
	s.segments[i].Color = color
	return nil
}

// Commit checks the set is big enough to be saved by an editor.
func (s *SegmentSet) Commit() error {
	if len(s.segments) < MinCommitSegments {
		return fmt.Errorf("%w: have %d", ErrTooFewSegments, len(s.segments))
	}
	return nil
}

func (s *SegmentSet) checkIndex(i int) error {
	if i < 0 || i >= len(s.segments) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.segments))
	}
	return nil
}
