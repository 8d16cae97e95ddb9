package wheel

import "fmt"

// DefaultItem asks GenerateDefault for Count independent segments labeled Label.
type DefaultItem struct {
	Label string `yaml:"label"`
	Count int    `yaml:"count"`
}

// DefaultItems is the stock prize list: 16 segments in total.
var DefaultItems = []DefaultItem{
	{Label: "ScoreLive Sticker", Count: 4},
	{Label: "ScoreLive Sticker", Count: 4},
	{Label: "ScoreLive Sticker", Count: 4},
	{Label: "ScoreLive Towel", Count: 1},
	{Label: "ScoreLive Cap", Count: 1},
	{Label: "ScoreLive T-Shirt", Count: 2},
}

// DefaultPalette is the rainbow used to color generated segments by position.
var DefaultPalette = []string{
	"#FF0000", "#FF4000", "#FF8000", "#FFBF00", "#FFFF00", "#BFFF00",
	"#80FF00", "#40FF00", "#00FF00", "#00FF40", "#00FF80", "#00FFBF",
	"#00FFFF", "#00BFFF", "#0080FF", "#0040FF", "#8000FF", "#BF00FF",
}

// GenerateDefault expands items into segments, shuffles them with a
// Fisher–Yates pass driven by rng and then colors them by position:
// segment i gets palette[i]. Colors never wrap; a palette shorter than the
// expansion is ErrPaletteExhausted.
func GenerateDefault(items []DefaultItem, palette []string, rng RNG) (*SegmentSet, error) {
	var segments []Segment
	for _, it := range items {
		label, err := normalizeLabel(it.Label)
		if err != nil {
			return nil, err
		}
		for range it.Count {
			segments = append(segments, Segment{Label: label})
		}
	}

	if len(segments) > len(palette) {
		return nil, fmt.Errorf("%w: %d items, %d colors", ErrPaletteExhausted, len(segments), len(palette))
	}

	for i := len(segments) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		segments[i], segments[j] = segments[j], segments[i]
	}

	for i := range segments {
		if err := checkColor(palette[i]); err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		segments[i].Color = palette[i]
	}

	return &SegmentSet{segments: segments}, nil
}
