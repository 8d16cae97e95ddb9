package wheel_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucky_wheel/pkg/wheel"
)

const eps = 1e-9

func makeSegments(n int) []wheel.Segment {
	segs := make([]wheel.Segment, n)
	for i := range segs {
		segs[i] = wheel.Segment{Label: fmt.Sprintf("S%d", i), Color: "#FF0000"}
	}
	return segs
}

func TestComputeLayout_Partition(t *testing.T) {
	g := wheel.DefaultGeometry(500, 500)
	for n := 1; n <= 24; n++ {
		l := wheel.ComputeLayout(makeSegments(n), g)
		require.Len(t, l.Sectors, n)

		require.InDelta(t, -math.Pi/2, l.Sectors[0].StartAngle, eps)
		require.InDelta(t, 3*math.Pi/2, l.Sectors[n-1].EndAngle, eps)

		var total float64
		for i, s := range l.Sectors {
			require.Equal(t, i, s.Index)
			require.Less(t, s.StartAngle, s.EndAngle)
			require.InDelta(t, (s.StartAngle+s.EndAngle)/2, s.MidAngle, eps)
			if i > 0 {
				require.InDelta(t, l.Sectors[i-1].EndAngle, s.StartAngle, eps, "gap or overlap at %d (n=%d)", i, n)
			}
			total += s.EndAngle - s.StartAngle
		}
		require.InDelta(t, 2*math.Pi, total, eps)
	}
}

func TestComputeLayout_Geometry(t *testing.T) {
	l := wheel.ComputeLayout(makeSegments(4), wheel.DefaultGeometry(500, 400))

	assert.Equal(t, 250.0, l.CenterX)
	assert.Equal(t, 200.0, l.CenterY)
	assert.Equal(t, 170.0, l.OuterRadius)
	assert.Equal(t, 40.0, l.HubRadius)
	assert.Equal(t, 0.7, l.LabelRadius)
	assert.Equal(t, "S2", l.Sectors[2].Segment.Label)
}

func TestComputeLayout_Empty(t *testing.T) {
	l := wheel.ComputeLayout(nil, wheel.DefaultGeometry(500, 500))
	require.True(t, l.Empty())
	require.Empty(t, l.Sectors)
}

func TestComputeLayout_TinyCanvas(t *testing.T) {
	l := wheel.ComputeLayout(makeSegments(2), wheel.DefaultGeometry(20, 20))
	require.Equal(t, 0.0, l.OuterRadius)
}

type recordingSurface struct {
	calls    []string
	sectors  []wheel.SectorFill
	outer    float64
	labels   []string
	rotation float64
}

func (r *recordingSurface) DrawSectors(sectors []wheel.SectorFill, outerRadius float64) {
	r.calls = append(r.calls, "sectors")
	r.sectors = sectors
	r.outer = outerRadius
}

func (r *recordingSurface) DrawLabel(text string, _, _ float64) {
	r.calls = append(r.calls, "label")
	r.labels = append(r.labels, text)
}

func (r *recordingSurface) DrawHub(float64) {
	r.calls = append(r.calls, "hub")
}

func (r *recordingSurface) ApplyRotation(degrees float64) {
	r.calls = append(r.calls, "rotate")
	r.rotation = degrees
}

func TestDraw_Order(t *testing.T) {
	segs := []wheel.Segment{{Label: "Win", Color: "#FF0000"}, {Label: "Lose", Color: "#0000FF"}}
	surf := &recordingSurface{}

	l := wheel.Render(surf, segs, wheel.DefaultGeometry(500, 500), 725)

	require.Equal(t, []string{"sectors", "label", "label", "hub", "rotate"}, surf.calls)
	require.Equal(t, []string{"Win", "Lose"}, surf.labels)
	require.Equal(t, l.OuterRadius, surf.outer)
	require.Equal(t, "#0000FF", surf.sectors[1].Color)
	require.Equal(t, 725.0, surf.rotation, "the absolute rotation is handed to the surface")
}

func TestDraw_EmptySkipsDrawing(t *testing.T) {
	surf := &recordingSurface{}
	wheel.Draw(surf, wheel.ComputeLayout(nil, wheel.DefaultGeometry(500, 500)))
	require.Empty(t, surf.calls)
}
