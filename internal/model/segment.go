package model

type SegmentField string

const (
	SegmentFieldLabel SegmentField = "label"
	SegmentFieldColor SegmentField = "color"
)

// SegmentEdit changes one field of the segment at Index.
type SegmentEdit struct {
	Index int
	Field SegmentField
	Value string
}
