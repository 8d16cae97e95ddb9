package wheel

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/wheel"
)

// Spin starts a spin over the current segments. A request that arrives while
// a spin is in flight is not an error: it gets the in-flight spin's ticket
// with Started unset.
func (s *serv) Spin(_ context.Context) (*model.SpinTicket, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.engine.Spinning() && s.current != nil {
		return &model.SpinTicket{
			SpinID:         s.current.id,
			TargetRotation: s.engine.State().TargetRotation,
		}, nil
	}

	segments := s.set.Segments()
	s.current = &activeSpin{
		id:        uuid.New(),
		startedAt: s.clock.Now(),
		segments:  segments,
	}

	if err := s.engine.Start(segments); err != nil {
		s.current = nil
		return nil, fmt.Errorf("start spin: %w", err)
	}

	return &model.SpinTicket{
		SpinID:         s.current.id,
		TargetRotation: s.engine.State().TargetRotation,
		Started:        true,
	}, nil
}

// The sink callbacks run inside Start or inside a clock frame. Both already
// hold s.lock, so they must not take it again.

func (s *serv) onSpinStarted(ev wheel.SpinStarted) {
	s.log.Infow("spin started",
		"spin_id", s.current.id,
		"segments", ev.SegmentCount,
		"from", ev.StartRotation,
		"target", ev.TargetRotation,
		"revolutions", ev.Revolutions,
	)
}

func (s *serv) onSpinFinished(ev wheel.SpinFinished) {
	spin := s.current
	s.current = nil
	if spin == nil {
		return
	}

	finishedAt := s.clock.Now()
	s.last = &model.SpinResult{
		SpinID:     spin.id,
		Index:      ev.Index,
		Label:      ev.Segment.Label,
		Color:      ev.Segment.Color,
		FinalAngle: ev.FinalAngle,
		FinishedAt: finishedAt,
	}

	s.log.Infow("spin finished",
		"spin_id", spin.id,
		"label", ev.Segment.Label,
		"index", ev.Index,
		"final_angle", ev.FinalAngle,
		"display_angle", wheel.DisplayRotation(ev.FinalAngle),
	)

	s.statsRepo.Record(model.SpinObservation{
		Label:  ev.Segment.Label,
		Shares: labelShares(spin.segments),
	})

	rec := &model.SpinRecord{
		ID:           spin.id,
		Label:        ev.Segment.Label,
		SegmentIndex: ev.Index,
		Color:        ev.Segment.Color,
		FinalAngle:   ev.FinalAngle,
		SegmentCount: len(spin.segments),
		StartedAt:    spin.startedAt,
		FinishedAt:   finishedAt,
	}
	if s.closed {
		s.log.Warnw("service closed, spin not journaled", "spin_id", spin.id, "label", rec.Label)
		return
	}
	s.journal.Add(1)
	go func() {
		defer s.journal.Done()
		s.writeJournal(rec)
	}()
}

// labelShares returns the fraction of the wheel each label covers.
func labelShares(segments []wheel.Segment) map[string]float64 {
	shares := make(map[string]float64)
	if len(segments) == 0 {
		return shares
	}
	w := 1 / float64(len(segments))
	for _, seg := range segments {
		shares[seg.Label] += w
	}
	return shares
}
