package converter

import (
	"github.com/google/uuid"

	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/wheel"
)

func ToSpinResultResponse(r model.SpinResult) dto.SpinResultResponse {
	return dto.SpinResultResponse{
		SpinID:     r.SpinID.String(),
		Index:      r.Index,
		Label:      r.Label,
		Color:      r.Color,
		FinalAngle: r.FinalAngle,
		FinishedAt: r.FinishedAt,
	}
}

func ToStateResponse(s model.WheelState) dto.StateResponse {
	out := dto.StateResponse{
		Rotation:        s.Rotation,
		DisplayRotation: s.DisplayRotation,
		TargetRotation:  s.TargetRotation,
		Spinning:        s.Spinning,
		SegmentCount:    s.SegmentCount,
	}
	if s.CurrentSpinID != uuid.Nil {
		out.CurrentSpinID = s.CurrentSpinID.String()
	}
	if s.LastResult != nil {
		last := ToSpinResultResponse(*s.LastResult)
		out.LastResult = &last
	}
	return out
}

func ToSpinResponse(t model.SpinTicket) dto.SpinResponse {
	return dto.SpinResponse{
		SpinID:         t.SpinID.String(),
		TargetRotation: t.TargetRotation,
		Started:        t.Started,
	}
}

func ToLayoutResponse(l wheel.Layout) dto.LayoutResponse {
	sectors := make([]dto.SectorResponse, 0, len(l.Sectors))
	for _, s := range l.Sectors {
		sectors = append(sectors, dto.SectorResponse{
			Index:      s.Index,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			MidAngle:   s.MidAngle,
			Label:      s.Segment.Label,
			Color:      s.Segment.Color,
		})
	}
	return dto.LayoutResponse{
		CenterX:     l.CenterX,
		CenterY:     l.CenterY,
		OuterRadius: l.OuterRadius,
		HubRadius:   l.HubRadius,
		LabelRadius: l.LabelRadius,
		Sectors:     sectors,
	}
}

func ToSpinRecordResponse(r model.SpinRecord) dto.SpinRecordResponse {
	return dto.SpinRecordResponse{
		SpinID:       r.ID.String(),
		Label:        r.Label,
		SegmentIndex: r.SegmentIndex,
		Color:        r.Color,
		FinalAngle:   r.FinalAngle,
		SegmentCount: r.SegmentCount,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}

func ToHistoryResponse(records []model.SpinRecord) dto.HistoryResponse {
	spins := make([]dto.SpinRecordResponse, 0, len(records))
	for _, r := range records {
		spins = append(spins, ToSpinRecordResponse(r))
	}
	return dto.HistoryResponse{Spins: spins}
}

func ToStatsResponse(s model.SpinStats) dto.StatsResponse {
	labels := make([]dto.LabelStatsResponse, 0, len(s.Labels))
	for _, l := range s.Labels {
		labels = append(labels, dto.LabelStatsResponse{
			Label:    l.Label,
			Hits:     l.Hits,
			Expected: l.Expected,
		})
	}
	return dto.StatsResponse{
		TotalSpins: s.TotalSpins,
		WindowSize: s.WindowSize,
		Window:     s.Window,
		Labels:     labels,
		ChiSquare:  s.ChiSquare,
		PValue:     s.PValue,
	}
}

func ToSegmentsResponse(segments []wheel.Segment) dto.SegmentsResponse {
	out := make([]dto.SegmentResponse, 0, len(segments))
	for i, s := range segments {
		out = append(out, dto.SegmentResponse{Index: i, Label: s.Label, Color: s.Color})
	}
	return dto.SegmentsResponse{Segments: out}
}

func ToSegmentEdit(index int, req dto.SegmentEditRequest) model.SegmentEdit {
	return model.SegmentEdit{
		Index: index,
		Field: model.SegmentField(req.Field),
		Value: req.Value,
	}
}
