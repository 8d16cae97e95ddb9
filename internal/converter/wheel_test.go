package converter_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/wheel"
)

func TestToStateResponse(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 5, 1, 12, 0, 4, 0, time.UTC)

	idle := converter.ToStateResponse(model.WheelState{Rotation: 750, DisplayRotation: 30, SegmentCount: 2})
	require.Empty(t, idle.CurrentSpinID)
	require.Nil(t, idle.LastResult)

	got := converter.ToStateResponse(model.WheelState{
		Rotation:      10,
		Spinning:      true,
		CurrentSpinID: id,
		LastResult:    &model.SpinResult{SpinID: id, Label: "Cap", Color: "#FF0000", FinalAngle: 2790, FinishedAt: at},
	})
	require.Equal(t, id.String(), got.CurrentSpinID)
	require.Equal(t, &dto.SpinResultResponse{SpinID: id.String(), Label: "Cap", Color: "#FF0000", FinalAngle: 2790, FinishedAt: at}, got.LastResult)
}

func TestToLayoutResponse(t *testing.T) {
	segs := []wheel.Segment{{Label: "Win", Color: "#00FF00"}, {Label: "Lose", Color: "#FF0000"}}
	l := wheel.ComputeLayout(segs, wheel.DefaultGeometry(500, 500))

	got := converter.ToLayoutResponse(l)
	require.Len(t, got.Sectors, 2)
	require.Equal(t, "Lose", got.Sectors[1].Label)
	require.Equal(t, l.Sectors[1].StartAngle, got.Sectors[1].StartAngle)
	require.Equal(t, 220.0, got.OuterRadius)

	empty := converter.ToLayoutResponse(wheel.ComputeLayout(nil, wheel.DefaultGeometry(500, 500)))
	require.NotNil(t, empty.Sectors, "empty wheels encode as [] rather than null")
}

func TestToSegmentsResponse(t *testing.T) {
	got := converter.ToSegmentsResponse([]wheel.Segment{{Label: "A", Color: "#000000"}, {Label: "B", Color: "#FFFFFF"}})
	require.Equal(t, []dto.SegmentResponse{
		{Index: 0, Label: "A", Color: "#000000"},
		{Index: 1, Label: "B", Color: "#FFFFFF"},
	}, got.Segments)
}

func TestToSegmentEdit(t *testing.T) {
	got := converter.ToSegmentEdit(4, dto.SegmentEditRequest{Field: "color", Value: "#ABCDEF"})
	require.Equal(t, model.SegmentEdit{Index: 4, Field: model.SegmentFieldColor, Value: "#ABCDEF"}, got)
}
