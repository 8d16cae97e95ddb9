package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"lucky_wheel/internal/config"
	"lucky_wheel/pkg/clock"
	"lucky_wheel/pkg/wheel"
)

const (
	wheelConfigEnvName = "WHEEL_CONFIG"
	defaultWheelConfig = "config.yaml"

	defaultCanvasSize = 500
	defaultFontSize   = 20
)

// WheelConfigPath returns WHEEL_CONFIG or config.yaml.
func WheelConfigPath() string {
	if p := os.Getenv(wheelConfigEnvName); len(p) != 0 {
		return p
	}
	return defaultWheelConfig
}

type canvasYAML struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Margin      float64 `yaml:"margin"`
	HubRadius   float64 `yaml:"hub_radius"`
	LabelRadius float64 `yaml:"label_radius"`
	FontSize    float64 `yaml:"font_size"`
}

type spinYAML struct {
	Duration       string  `yaml:"duration"`
	MinRevolutions float64 `yaml:"min_revolutions"`
	MaxRevolutions float64 `yaml:"max_revolutions"`
	FrameInterval  string  `yaml:"frame_interval"`
}

type wheelYAML struct {
	Canvas   canvasYAML          `yaml:"canvas"`
	Spin     spinYAML            `yaml:"spin"`
	Palette  []string            `yaml:"palette"`
	Defaults []wheel.DefaultItem `yaml:"defaults"`
}

type wheelConfig struct {
	geometry      wheel.Geometry
	fontSize      float64
	duration      time.Duration
	minRev        float64
	maxRev        float64
	frameInterval time.Duration
	palette       []string
	defaults      []wheel.DefaultItem
}

// NewWheelConfigFromYAML reads the wheel: block of path. A missing file, or a
// missing field, falls back to the stock wheel.
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	var doc struct {
		Wheel wheelYAML `yaml:"wheel"`
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read wheel config: %w", err)
	default:
		if err = yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse wheel config %s: %w", path, err)
		}
	}

	return newWheelConfig(doc.Wheel)
}

func newWheelConfig(y wheelYAML) (*wheelConfig, error) {
	w, h := y.Canvas.Width, y.Canvas.Height
	if w == 0 {
		w = defaultCanvasSize
	}
	if h == 0 {
		h = defaultCanvasSize
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}

	g := wheel.DefaultGeometry(float64(w), float64(h))
	if y.Canvas.Margin > 0 {
		g.Margin = y.Canvas.Margin
	}
	if y.Canvas.HubRadius > 0 {
		g.HubRadius = y.Canvas.HubRadius
	}
	if y.Canvas.LabelRadius > 0 {
		if y.Canvas.LabelRadius > 1 {
			return nil, fmt.Errorf("label_radius must be within (0, 1], got %v", y.Canvas.LabelRadius)
		}
		g.LabelRadius = y.Canvas.LabelRadius
	}

	cfg := &wheelConfig{
		geometry:      g,
		fontSize:      defaultFontSize,
		duration:      wheel.DefaultDuration,
		minRev:        wheel.DefaultMinRevolutions,
		maxRev:        wheel.DefaultMaxRevolutions,
		frameInterval: clock.DefaultFrameInterval,
		palette:       wheel.DefaultPalette,
		defaults:      wheel.DefaultItems,
	}
	if y.Canvas.FontSize > 0 {
		cfg.fontSize = y.Canvas.FontSize
	}

	var err error
	if cfg.duration, err = parsePositiveDuration("spin.duration", y.Spin.Duration, cfg.duration); err != nil {
		return nil, err
	}
	if cfg.frameInterval, err = parsePositiveDuration("spin.frame_interval", y.Spin.FrameInterval, cfg.frameInterval); err != nil {
		return nil, err
	}

	if y.Spin.MinRevolutions != 0 || y.Spin.MaxRevolutions != 0 {
		minRev, maxRev := y.Spin.MinRevolutions, y.Spin.MaxRevolutions
		if maxRev == 0 {
			maxRev = wheel.DefaultMaxRevolutions
		}
		if minRev < 0 || maxRev <= minRev {
			return nil, fmt.Errorf("invalid revolution range [%v, %v)", minRev, maxRev)
		}
		cfg.minRev, cfg.maxRev = minRev, maxRev
	}

	if len(y.Palette) > 0 {
		for _, c := range y.Palette {
			if !wheel.ValidColor(c) {
				return nil, fmt.Errorf("palette: %w: %q", wheel.ErrInvalidColor, c)
			}
		}
		cfg.palette = y.Palette
	}

	if len(y.Defaults) > 0 {
		total := 0
		for _, item := range y.Defaults {
			if item.Count <= 0 {
				return nil, fmt.Errorf("defaults: %q has non-positive count %d", item.Label, item.Count)
			}
			total += item.Count
		}
		if total > len(cfg.palette) {
			return nil, fmt.Errorf("defaults: %w: %d segments, %d colors", wheel.ErrPaletteExhausted, total, len(cfg.palette))
		}
		cfg.defaults = y.Defaults
	}

	return cfg, nil
}

func parsePositiveDuration(field, raw string, def time.Duration) (time.Duration, error) {
	if len(raw) == 0 {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", field, d)
	}
	return d, nil
}

func (c *wheelConfig) Geometry() wheel.Geometry {
	return c.geometry
}

func (c *wheelConfig) FontSize() float64 {
	return c.fontSize
}

func (c *wheelConfig) SpinDuration() time.Duration {
	return c.duration
}

func (c *wheelConfig) Revolutions() (float64, float64) {
	return c.minRev, c.maxRev
}

func (c *wheelConfig) FrameInterval() time.Duration {
	return c.frameInterval
}

func (c *wheelConfig) Palette() []string {
	out := make([]string, len(c.palette))
	copy(out, c.palette)
	return out
}

func (c *wheelConfig) Defaults() []wheel.DefaultItem {
	out := make([]wheel.DefaultItem, len(c.defaults))
	copy(out, c.defaults)
	return out
}
