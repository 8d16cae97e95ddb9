package wheel

import (
	"context"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/wheel"
)

// Edits are refused while a spin is in flight; the engine resolves against
// its own snapshot, but the host keeps the wheel on screen stable until the
// result is out. None of the edits touch the rotation.

func (s *serv) Segments(_ context.Context) []wheel.Segment {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Segments()
}

func (s *serv) AddSegment(_ context.Context, label, color string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	if err := s.set.Add(label, color); err != nil {
		return fmt.Errorf("add segment: %w", err)
	}
	s.log.Debugw("segment added", "label", label, "color", color, "count", s.set.Len())
	return nil
}

func (s *serv) EditSegment(_ context.Context, edit model.SegmentEdit) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.editable(); err != nil {
		return err
	}

	var err error
	switch edit.Field {
	case model.SegmentFieldLabel:
		err = s.set.UpdateLabel(edit.Index, edit.Value)
	case model.SegmentFieldColor:
		err = s.set.UpdateColor(edit.Index, edit.Value)
	default:
		return fmt.Errorf("edit segment: %w: %q", service.ErrUnknownField, edit.Field)
	}
	if err != nil {
		return fmt.Errorf("edit segment %d: %w", edit.Index, err)
	}
	return nil
}

func (s *serv) RemoveSegment(_ context.Context, index int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	if err := s.set.RemoveAt(index); err != nil {
		return fmt.Errorf("remove segment: %w", err)
	}
	return nil
}

func (s *serv) ClearSegments(_ context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	s.set.Clear()
	s.log.Info("segments cleared")
	return nil
}

// ResetDefaults reshuffles the configured prize list onto the wheel.
func (s *serv) ResetDefaults(_ context.Context) ([]wheel.Segment, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.editable(); err != nil {
		return nil, err
	}
	set, err := wheel.GenerateDefault(s.cfg.Defaults(), s.cfg.Palette(), s.rng)
	if err != nil {
		return nil, fmt.Errorf("reset defaults: %w", err)
	}
	s.set = set
	s.log.Infow("segments reset to defaults", "count", set.Len())
	return set.Segments(), nil
}

// SaveSegments closes an editing session. It only accepts a wheel that can
// actually be spun meaningfully.
func (s *serv) SaveSegments(_ context.Context) ([]wheel.Segment, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.set.Commit(); err != nil {
		return nil, fmt.Errorf("save segments: %w", err)
	}
	s.log.Infow("segments saved", "count", s.set.Len())
	return s.set.Segments(), nil
}

func (s *serv) editable() error {
	if s.engine.Spinning() {
		return fmt.Errorf("wheel is spinning: %w", wheel.ErrInvalidState)
	}
	return nil
}
