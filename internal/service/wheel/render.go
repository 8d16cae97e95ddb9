package wheel

import (
	"context"
	"fmt"
	"io"

	"lucky_wheel/pkg/raster"
	"lucky_wheel/pkg/wheel"
)

func (s *serv) Layout(_ context.Context) wheel.Layout {
	s.lock.Lock()
	defer s.lock.Unlock()
	return wheel.ComputeLayout(s.set.Segments(), s.cfg.Geometry())
}

// RenderPNG draws the wheel at its current rotation. Only the snapshot is
// taken under the lock; rasterizing happens outside it.
func (s *serv) RenderPNG(_ context.Context, w io.Writer) error {
	s.lock.Lock()
	segments := s.set.Segments()
	rotation := s.engine.State().CurrentRotation
	s.lock.Unlock()

	g := s.cfg.Geometry()
	opts := raster.DefaultOptions(int(g.Width), int(g.Height))
	opts.FontSize = s.cfg.FontSize()

	surface, err := raster.New(opts)
	if err != nil {
		return fmt.Errorf("render wheel: %w", err)
	}
	wheel.Render(surface, segments, g, rotation)

	if err = surface.EncodePNG(w); err != nil {
		return fmt.Errorf("encode wheel png: %w", err)
	}
	return nil
}
