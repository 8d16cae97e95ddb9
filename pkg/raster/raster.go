// Package raster implements wheel.Surface on an in-memory RGBA image and
// encodes the result as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"lucky_wheel/pkg/wheel"
)

// Options configures a Surface.
type Options struct {
	Width       int
	Height      int
	FontSize    float64
	Background  color.Color
	Stroke      color.Color
	StrokeWidth float64
	LabelColor  color.Color
	HubFill     color.Color
	HubStroke   color.Color
	HubWidth    float64
}

// DefaultOptions returns the stock wheel look for a width×height canvas.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		FontSize:    20,
		Background:  color.Transparent,
		Stroke:      color.Black,
		StrokeWidth: 1,
		LabelColor:  color.Black,
		HubFill:     color.White,
		HubStroke:   color.RGBA{0x33, 0x33, 0x33, 0xff},
		HubWidth:    4,
	}
}

// FallbackFill paints a sector whose color does not parse. SegmentSet only
// admits #RRGGBB colors, so it shows up only for hand-built fills.
var FallbackFill = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// regularFont is parsed once; faces are cheap to build from it.
var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// arcStep bounds the angle covered by one polyline step when flattening arcs.
const arcStep = math.Pi / 90

// Surface paints an unrotated wheel into its own layer and applies the
// rotation only when the final image is composed.
type Surface struct {
	opts     Options
	layer    *image.RGBA
	face     font.Face
	cx, cy   float64
	outer    float64
	rotation float64
}

// New allocates a blank surface.
func New(opts Options) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", opts.Width, opts.Height)
	}

	fnt, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: font face: %w", err)
	}

	return &Surface{
		opts:  opts,
		layer: image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		face:  face,
		cx:    float64(opts.Width) / 2,
		cy:    float64(opts.Height) / 2,
	}, nil
}

// DrawSectors fills each sector as a pie slice and outlines it. A color that
// is not #RRGGBB is painted with FallbackFill.
func (s *Surface) DrawSectors(sectors []wheel.SectorFill, outerRadius float64) {
	s.outer = outerRadius
	for _, sec := range sectors {
		var fill color.Color = FallbackFill
		if c, err := ParseHex(sec.Color); err == nil {
			fill = c
		}
		z := s.rasterizer()
		z.MoveTo(float32(s.cx), float32(s.cy))
		s.arcTo(z, outerRadius, sec.StartAngle, sec.EndAngle)
		z.ClosePath()
		z.Draw(s.layer, s.layer.Bounds(), image.NewUniform(fill), image.Point{})
	}

	if s.opts.StrokeWidth <= 0 {
		return
	}
	for _, sec := range sectors {
		s.strokeLine(s.cx, s.cy, s.cx+outerRadius*math.Cos(sec.StartAngle), s.cy+outerRadius*math.Sin(sec.StartAngle))
	}
	if len(sectors) > 0 {
		s.ring(outerRadius, s.opts.StrokeWidth, s.opts.Stroke)
	}
}

// DrawLabel writes text centered at radiusFraction of the outer radius,
// turned to midAngle so it reads along the radius.
func (s *Surface) DrawLabel(text string, midAngle, radiusFraction float64) {
	if text == "" {
		return
	}
	m := s.face.Metrics()
	w := font.MeasureString(s.face, text).Ceil() + 2
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	label := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(s.opts.LabelColor),
		Face: s.face,
		Dot:  fixed.Point26_6{X: fixed.I(1), Y: m.Ascent},
	}
	d.DrawString(text)

	r := s.outer * radiusFraction
	sin, cos := math.Sincos(midAngle)
	ox := r - float64(w)/2
	oy := -float64(h) / 2
	s2d := f64.Aff3{
		cos, -sin, s.cx + cos*ox - sin*oy,
		sin, cos, s.cy + sin*ox + cos*oy,
	}
	draw.BiLinear.Transform(s.layer, s2d, label, label.Bounds(), draw.Over, nil)
}

// DrawHub paints the center disc and its outline.
func (s *Surface) DrawHub(radius float64) {
	if radius <= 0 {
		return
	}
	z := s.rasterizer()
	s.circle(z, radius, false)
	z.Draw(s.layer, s.layer.Bounds(), image.NewUniform(s.opts.HubFill), image.Point{})
	if s.opts.HubWidth > 0 {
		s.ring(radius, s.opts.HubWidth, s.opts.HubStroke)
	}
}

// ApplyRotation sets the clockwise rotation, in degrees, of the composed image.
func (s *Surface) ApplyRotation(degrees float64) {
	s.rotation = degrees
}

// Rotation returns the rotation last applied.
func (s *Surface) Rotation() float64 {
	return s.rotation
}

// Image composes the background and the rotated wheel layer.
func (s *Surface) Image() *image.RGBA {
	dst := image.NewRGBA(s.layer.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.opts.Background), image.Point{}, draw.Src)

	deg := wheel.DisplayRotation(s.rotation)
	if deg == 0 {
		draw.Draw(dst, dst.Bounds(), s.layer, image.Point{}, draw.Over)
		return dst
	}

	sin, cos := math.Sincos(deg * math.Pi / 180)
	s2d := f64.Aff3{
		cos, -sin, s.cx - cos*s.cx + sin*s.cy,
		sin, cos, s.cy - sin*s.cx - cos*s.cy,
	}
	draw.BiLinear.Transform(dst, s2d, s.layer, s.layer.Bounds(), draw.Over, nil)
	return dst
}

// EncodePNG writes the composed image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, s.Image())
}

func (s *Surface) rasterizer() *vector.Rasterizer {
	b := s.layer.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

// arcTo appends a clockwise (on screen) arc of radius r from a0 to a1.
func (s *Surface) arcTo(z *vector.Rasterizer, r, a0, a1 float64) {
	steps := int(math.Ceil(math.Abs(a1-a0) / arcStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		z.LineTo(float32(s.cx+r*math.Cos(a)), float32(s.cy+r*math.Sin(a)))
	}
}

func (s *Surface) circle(z *vector.Rasterizer, r float64, reverse bool) {
	a0, a1 := 0.0, 2*math.Pi
	if reverse {
		a0, a1 = a1, a0
	}
	z.MoveTo(float32(s.cx+r*math.Cos(a0)), float32(s.cy+r*math.Sin(a0)))
	s.arcTo(z, r, a0, a1)
	z.ClosePath()
}

// ring strokes a circle of radius r with the given width. The inner contour
// runs the other way so the rasterizer leaves the middle empty.
func (s *Surface) ring(r, width float64, c color.Color) {
	z := s.rasterizer()
	s.circle(z, r+width/2, false)
	s.circle(z, math.Max(r-width/2, 0), true)
	z.Draw(s.layer, s.layer.Bounds(), image.NewUniform(c), image.Point{})
}

func (s *Surface) strokeLine(x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	hw := s.opts.StrokeWidth / 2
	nx, ny := -dy/l*hw, dx/l*hw

	z := s.rasterizer()
	z.MoveTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x2+nx), float32(y2+ny))
	z.LineTo(float32(x2-nx), float32(y2-ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.ClosePath()
	z.Draw(s.layer, s.layer.Bounds(), image.NewUniform(s.opts.Stroke), image.Point{})
}

// ParseHex converts #RRGGBB into an opaque color.
func ParseHex(hex string) (color.RGBA, error) {
	if !wheel.ValidColor(hex) {
		return color.RGBA{}, fmt.Errorf("%w: %q", wheel.ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
